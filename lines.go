package colorcat

import (
	"fmt"
	"strconv"
	"strings"
)

// IntSet is a set of 1-based line numbers.
type IntSet map[int]struct{}

// Add inserts n.
func (s IntSet) Add(n int) { s[n] = struct{}{} }

// Has reports whether n is in the set.
func (s IntSet) Has(n int) bool {
	_, ok := s[n]
	return ok
}

// ParseLineRanges parses a comma-separated list of line numbers and
// inclusive ranges ("10,20-30") into a set.  An empty spec yields an
// empty set.
func ParseLineRanges(spec string) (IntSet, error) {
	set := make(IntSet)
	if strings.TrimSpace(spec) == "" {
		return set, nil
	}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		from, to, isRange := strings.Cut(part, "-")
		if !isRange {
			n, err := strconv.Atoi(part)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("bad line number %q", part)
			}
			set.Add(n)
			continue
		}
		start, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("bad range start %q", part)
		}
		end, err := strconv.Atoi(to)
		if err != nil {
			return nil, fmt.Errorf("bad range end %q", part)
		}
		if start < 1 || end < start {
			return nil, fmt.Errorf("bad range %q", part)
		}
		for n := start; n <= end; n++ {
			set.Add(n)
		}
	}
	return set, nil
}
