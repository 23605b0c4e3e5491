package markup

import "strings"

// WellBracketed reports whether s can be segmented: once sanitized and
// stripped of spaces it must be non-empty and hold as many '<' as '>', at
// least one of each.
func WellBracketed(s string) bool {
	compact := strings.ReplaceAll(Sanitize(s), " ", "")
	if compact == "" {
		return false
	}
	opens := strings.Count(compact, "<")
	closes := strings.Count(compact, ">")
	if opens < 1 || closes < 1 {
		return false
	}
	return opens == closes
}

// Segment splits s into "<...>" fragments in document order. Text outside
// the brackets is discarded. It returns ErrMalformedInput when s is not
// well bracketed.
func Segment(s string) ([]string, error) {
	if !WellBracketed(s) {
		return nil, ErrMalformedInput
	}

	clean := Sanitize(s)

	var fragments []string
	start := -1
	for i := 0; i < len(clean); i++ {
		switch clean[i] {
		case '<':
			// A nested '<' stays inside the current fragment so Classify
			// rejects it instead of it being silently dropped.
			if start < 0 {
				start = i
			}
		case '>':
			if start >= 0 {
				fragments = append(fragments, clean[start:i+1])
				start = -1
			}
		}
	}

	return fragments, nil
}
