package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseOffsets(t *testing.T) {
	for _, tt := range []struct {
		name    string
		spec    string
		want    Offsets
		wantErr bool
	}{
		{
			name: "single category",
			spec: "comma 5,0",
			want: Offsets{"comma": {Fg: 5, Bg: 0}},
		},
		{
			name: "wildcard and category",
			spec: "all 1,1 comma 5,0",
			want: Offsets{"all": {Fg: 1, Bg: 1}, "comma": {Fg: 5, Bg: 0}},
		},
		{
			name: "negative deltas",
			spec: "parens -5,-10",
			want: Offsets{"parens": {Fg: -5, Bg: -10}},
		},
		{
			name: "extra whitespace",
			spec: "  colon   2,3  ",
			want: Offsets{"colon": {Fg: 2, Bg: 3}},
		},
		{name: "empty", spec: "   ", wantErr: true},
		{name: "dangling category", spec: "comma", wantErr: true},
		{name: "missing comma", spec: "comma 5", wantErr: true},
		{name: "non-integer fg", spec: "comma x,0", wantErr: true},
		{name: "non-integer bg", spec: "comma 0,y", wantErr: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOffsets(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOffsets(%q) = %v, want error", tt.spec, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOffsets(%q): %v", tt.spec, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseOffsets(%q) mismatch (-want +got):\n%s", tt.spec, diff)
			}
		})
	}
}

func testTheme() *Theme {
	return &Theme{
		ColorSettings: map[string]*Symbol{
			"comma":  {Foreground: 250, Background: 250, Triggers: []string{","}},
			"parens": {Foreground: 3, Background: 3, Triggers: []string{"(", ")"}},
		},
	}
}

func TestApplyOffsets(t *testing.T) {
	for _, tt := range []struct {
		name   string
		offs   Offsets
		wantFg map[string]int
		wantBg map[string]int
	}{
		{
			name:   "wraps past 255",
			offs:   Offsets{"comma": {Fg: 6, Bg: 0}},
			wantFg: map[string]int{"comma": 0, "parens": 3},
			wantBg: map[string]int{"comma": 250, "parens": 3},
		},
		{
			name:   "positive within range",
			offs:   Offsets{"comma": {Fg: 5, Bg: 0}},
			wantFg: map[string]int{"comma": 255, "parens": 3},
			wantBg: map[string]int{"comma": 250, "parens": 3},
		},
		{
			name:   "wildcard bumps foregrounds only",
			offs:   Offsets{Wildcard: {Fg: 1, Bg: 0}},
			wantFg: map[string]int{"comma": 251, "parens": 4},
			wantBg: map[string]int{"comma": 250, "parens": 3},
		},
		{
			name:   "wildcard touches every symbol",
			offs:   Offsets{Wildcard: {Fg: 1, Bg: 2}},
			wantFg: map[string]int{"comma": 251, "parens": 4},
			wantBg: map[string]int{"comma": 252, "parens": 5},
		},
		{
			name:   "named overrides wildcard",
			offs:   Offsets{Wildcard: {Fg: 1, Bg: 1}, "comma": {Fg: 5, Bg: 0}},
			wantFg: map[string]int{"comma": 255, "parens": 4},
			wantBg: map[string]int{"comma": 250, "parens": 4},
		},
		{
			name:   "negative wraps below zero",
			offs:   Offsets{"parens": {Fg: -5, Bg: 0}},
			wantFg: map[string]int{"comma": 250, "parens": 254},
			wantBg: map[string]int{"comma": 250, "parens": 3},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyOffsets(testTheme(), tt.offs)
			for name, want := range tt.wantFg {
				if fg := got.ColorSettings[name].Foreground; fg != want {
					t.Errorf("%s foreground = %d, want %d", name, fg, want)
				}
			}
			for name, want := range tt.wantBg {
				if bg := got.ColorSettings[name].Background; bg != want {
					t.Errorf("%s background = %d, want %d", name, bg, want)
				}
			}
		})
	}
}

func TestApplyOffsetsDoesNotMutateBase(t *testing.T) {
	base := testTheme()
	_ = ApplyOffsets(base, Offsets{Wildcard: {Fg: 100, Bg: 100}})
	if diff := cmp.Diff(testTheme(), base); diff != "" {
		t.Errorf("base theme mutated (-want +got):\n%s", diff)
	}
}
