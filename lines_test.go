package colorcat

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLineRanges(t *testing.T) {
	for _, tt := range []struct {
		name    string
		spec    string
		want    []int
		wantErr bool
	}{
		{name: "empty", spec: "", want: nil},
		{name: "whitespace only", spec: "   ", want: nil},
		{name: "single", spec: "7", want: []int{7}},
		{name: "list", spec: "1,3,5", want: []int{1, 3, 5}},
		{name: "range", spec: "4-6", want: []int{4, 5, 6}},
		{name: "mixed with spaces", spec: "10, 20-22", want: []int{10, 20, 21, 22}},
		{name: "overlap deduplicates", spec: "2,2,1-3", want: []int{1, 2, 3}},
		{name: "zero line", spec: "0", wantErr: true},
		{name: "negative start", spec: "-3-5", wantErr: true},
		{name: "reversed range", spec: "9-4", wantErr: true},
		{name: "garbage", spec: "a,b", wantErr: true},
		{name: "dangling comma", spec: "1,", wantErr: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseLineRanges(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLineRanges(%q) = %v, want error", tt.spec, set)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLineRanges(%q): %v", tt.spec, err)
			}
			var got []int
			for n := range set {
				got = append(got, n)
			}
			sort.Ints(got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLineRanges(%q) mismatch (-want +got):\n%s", tt.spec, diff)
			}
		})
	}
}
