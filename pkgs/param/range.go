package param

import (
	"strconv"
	"strings"
)

// Range is an integer range literal: either a single value, or a
// half-open/closed bound pair.
type Range struct {
	Single *int
	Low    *int
	High   *int
}

// ParseRange parses a range literal: a bare integer selects Single;
// otherwise the text is split on ".." with either side optional.
func ParseRange(text string) *Range {
	if v, err := strconv.Atoi(text); err == nil {
		return &Range{Single: &v}
	}

	idx := strings.Index(text, "..")
	if idx < 0 {
		return &Range{}
	}

	r := &Range{}
	if low := text[:idx]; low != "" {
		if v, err := strconv.Atoi(low); err == nil {
			r.Low = &v
		}
	}
	if high := text[idx+2:]; high != "" {
		if v, err := strconv.Atoi(high); err == nil {
			r.High = &v
		}
	}
	return r
}

func (r *Range) String() string {
	switch {
	case r.Single != nil:
		return strconv.Itoa(*r.Single)
	case r.Low != nil && r.High != nil:
		return strconv.Itoa(*r.Low) + ".." + strconv.Itoa(*r.High)
	case r.Low != nil:
		return strconv.Itoa(*r.Low) + ".."
	case r.High != nil:
		return ".." + strconv.Itoa(*r.High)
	default:
		return ""
	}
}

func (*Range) isParameter() {}
