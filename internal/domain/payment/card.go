package payment

import "strings"

// Input formatters for the mock payment form. They mirror what the form
// applies on every keystroke, so re-applying a formatter to its own output is
// a no-op.

// FormatCardNumber strips everything but digits and groups them in runs of
// four: "4242424242424242" -> "4242 4242 4242 4242".
func FormatCardNumber(value string) string {
	digits := keepDigits(value)
	if digits == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry inserts the slash once two digits are present and caps the
// value at four digits: "1225" -> "12/25", "1" -> "1".
func FormatExpiry(value string) string {
	digits := keepDigits(value)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) >= 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// FormatCVC keeps digits only, at most three.
func FormatCVC(value string) string {
	digits := keepDigits(value)
	if len(digits) > 3 {
		digits = digits[:3]
	}
	return digits
}

func keepDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
