package invoice

import "time"

// Line is one billed service on an invoice.
type Line struct {
	ServiceID int
	Name      string
	Price     float64
}

// Invoice is a snapshot of the appointment, payment and service state at
// billing time. Amounts are precomputed by the payment service; the
// renderer only formats.
type Invoice struct {
	Number          int
	IssuedAt        time.Time
	CompanyName     string
	CompanyAddress  string
	ClientFirstName string
	ClientLastName  string
	ClientEmail     string
	ClientCUIT      string
	Professional    string
	AppointmentID   int
	AppointmentDate time.Time
	Lines           []Line
	Subtotal        float64
	Discount        float64
	Total           float64
}

// Renderer produces the invoice document bytes.
type Renderer interface {
	Render(inv *Invoice) ([]byte, error)
}
