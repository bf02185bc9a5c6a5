package request

import "github.com/venkatbala210/hotel-management-system/internal/domain/payment"

type CapturePaymentRequest struct {
	Email      string `json:"email"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVC        string `json:"cvc"`
}

func (r CapturePaymentRequest) ToForm() payment.CaptureForm {
	return payment.CaptureForm{
		Email:      r.Email,
		CardNumber: r.CardNumber,
		Expiry:     r.ExpiryDate,
		CVC:        r.CVC,
	}
}
