package markup

import "strings"

// controlChars are removed by Sanitize: LF, CR, TAB, VT, FF, NUL and BS.
const controlChars = "\n\r\t\v\f\x00\b"

// Sanitize removes non-printable control characters from s. Every other byte,
// spaces included, is kept.
func Sanitize(s string) string {
	if !strings.ContainsAny(s, controlChars) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(controlChars, s[i]) >= 0 {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
