package codes

import "strings"

const (
	DefaultMinLength = 8
	DefaultMaxLength = 11
)

// Normalizer filters single-code input and checks it before submission.
//
// With Truncate set, input is capped at MaxLen digits while typing. Without
// it the value may grow past MaxLen and is only rejected by Validate.
type Normalizer struct {
	MinLen   int
	MaxLen   int
	Truncate bool
}

// DefaultNormalizer accepts 8 to 11 digits and truncates while typing.
func DefaultNormalizer() Normalizer {
	return Normalizer{MinLen: DefaultMinLength, MaxLen: DefaultMaxLength, Truncate: true}
}

// DigitsOnly drops every character that is not an ASCII decimal digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize returns the stored field value for raw input.
func (n Normalizer) Normalize(raw string) string {
	v := DigitsOnly(raw)
	if n.Truncate && n.MaxLen > 0 && len(v) > n.MaxLen {
		v = v[:n.MaxLen]
	}
	return v
}

// Keystroke appends typed to current and normalises the result.
func (n Normalizer) Keystroke(current, typed string) string {
	return n.Normalize(current + typed)
}

// Validate reports whether code may be submitted. It is a convenience check
// only; the service decides what it accepts.
func (n Normalizer) Validate(code string) error {
	return validateCode(strings.TrimSpace(code), n.MinLen, n.MaxLen)
}
