package payment

import (
	"regexp"
	"strings"
)

// CaptureForm carries the card details typed into the mock payment modal.
// Nothing here ever reaches a real processor; the only consumer is the
// gateway's mock payment endpoint, which receives just amount and booking id.
type CaptureForm struct {
	Email      string
	CardNumber string
	Expiry     string
	CVC        string
}

// FieldErrors maps field name to a display message. Empty means the form may
// be submitted.
type FieldErrors map[string]string

// Basic local@domain shape; deliverability is not this form's problem.
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Validate applies the form's own formatters before checking, so values
// arriving unformatted ("4242424242424242", "1225") validate the same as
// formatted ones.
func (f *CaptureForm) Validate() FieldErrors {
	f.CardNumber = FormatCardNumber(f.CardNumber)
	f.Expiry = FormatExpiry(f.Expiry)
	f.CVC = FormatCVC(f.CVC)

	errs := FieldErrors{}

	if f.Email == "" || !emailShape.MatchString(f.Email) {
		errs["email"] = "Valid email is required"
	}

	digits := strings.ReplaceAll(f.CardNumber, " ", "")
	if len(digits) < 13 || len(digits) > 19 {
		errs["cardNumber"] = "Valid card number is required"
	}

	if len(f.Expiry) != 5 {
		errs["expiryDate"] = "Valid expiry date is required"
	}

	if len(f.CVC) != 3 {
		errs["cvc"] = "Valid CVC is required"
	}

	return errs
}
