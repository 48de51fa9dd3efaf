package domain

import "time"

type User struct {
	ID             int       `db:"id"`
	Username       string    `db:"username"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	IsOwner        bool      `db:"is_owner"`
	IsProfessional bool      `db:"is_professional"`
	IsSecretary    bool      `db:"is_secretary"`
	CUIT           string    `db:"cuit"`
	CreatedAt      time.Time `db:"created_at"`
}

type Service struct {
	ID    int     `db:"id"`
	Name  string  `db:"name"`
	Price float64 `db:"price"`
}

type PaymentType struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type Appointment struct {
	ID              int        `db:"id"`
	ClientID        int        `db:"client_id"`
	ProfessionalID  int        `db:"professional_id"`
	AppointmentDate time.Time  `db:"appointment_date"`
	PaymentDeadline *time.Time `db:"payment_deadline"`
	PaymentID       *int       `db:"payment_id"`
	CreatedAt       time.Time  `db:"created_at"`
}

type Payment struct {
	ID            int       `db:"id"`
	TotalPayment  float64   `db:"total_payment"`
	Discount      float64   `db:"discount"`
	PaymentTypeID int       `db:"payment_type_id"`
	PaymentDate   time.Time `db:"payment_date"`
	CreditCard    string    `db:"credit_card"`
	PIN           string    `db:"pin"`
	AppointmentID int       `db:"appointment_id"`
}

// PaymentListItem is a payment row joined with the client and payment type
// names, as returned by the staff payment listing.
type PaymentListItem struct {
	Payment
	ClientFirstName string `db:"client_first_name"`
	ClientLastName  string `db:"client_last_name"`
	PaymentTypeName string `db:"payment_type_name"`
}

type Query struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type QueryResponse struct {
	ID        int       `db:"id"`
	QueryID   int       `db:"query_id"`
	UserID    int       `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type Post struct {
	ID       int       `db:"id"`
	Title    string    `db:"title"`
	Content  string    `db:"content"`
	PostedAt time.Time `db:"posted_at"`
	AuthorID *int      `db:"author_id"`
	Alias    string    `db:"alias"`
}

type Announcement struct {
	ID              int       `db:"id"`
	Title           string    `db:"title"`
	Content         string    `db:"content"`
	DateDescription string    `db:"date_description"`
	UserID          *int      `db:"user_id"`
	CreatedAt       time.Time `db:"created_at"`
}
