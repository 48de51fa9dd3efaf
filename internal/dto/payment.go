package dto

import "time"

type CreatePaymentRequestDTO struct {
	AppointmentID int     `json:"appointment" example:"1"`
	PaymentTypeID int     `json:"payment_type" example:"2"`
	Discount      float64 `json:"discount" example:"0.1"`
	CreditCard    string  `json:"credit_card,omitempty" example:"1234567890123456"`
	PIN           string  `json:"pin,omitempty" example:"1234"`
}

// PaymentResponseDTO never carries the credit card or PIN back to the
// caller; both are write-only.
type PaymentResponseDTO struct {
	ID            int       `json:"id" example:"1"`
	TotalPayment  float64   `json:"total_payment" example:"135.00"`
	Discount      float64   `json:"discount" example:"0.1"`
	PaymentTypeID int       `json:"payment_type" example:"2"`
	PaymentDate   time.Time `json:"payment_date"`
	AppointmentID int       `json:"appointment" example:"1"`
}

type PaymentListItemDTO struct {
	PaymentResponseDTO
	ClientFirstName string `json:"client_first_name"`
	ClientLastName  string `json:"client_last_name"`
	PaymentType     string `json:"payment_type_name" example:"Efectivo"`
}
