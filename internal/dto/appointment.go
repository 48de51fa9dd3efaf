package dto

import "time"

type CreateAppointmentRequestDTO struct {
	ProfessionalID  int       `json:"professional_id" example:"2"`
	ServiceIDs      []int     `json:"service_ids" example:"1,2"`
	AppointmentDate time.Time `json:"appointment_date" example:"2020-12-09T16:09:57+03:00"`
}

type UpdateAppointmentRequestDTO struct {
	ProfessionalID  *int       `json:"professional_id,omitempty"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
}

type ReplaceServicesRequestDTO struct {
	ServiceIDs []int `json:"service_ids"`
}

type AppointmentResponseDTO struct {
	ID              int                  `json:"id" example:"1"`
	ClientID        int                  `json:"client_id" example:"3"`
	ProfessionalID  int                  `json:"professional_id" example:"2"`
	AppointmentDate time.Time            `json:"appointment_date"`
	PaymentDeadline *time.Time           `json:"payment_deadline,omitempty"`
	PaymentID       *int                 `json:"payment_id,omitempty"`
	Services        []ServiceResponseDTO `json:"services"`
}

type ClientsByProfessionalItemDTO struct {
	ClientFirstName string   `json:"client_first_name"`
	ClientLastName  string   `json:"client_last_name"`
	AppointmentDate string   `json:"appointment_date" example:"2024-11-02 15:30"`
	Services        []string `json:"services"`
}

type ClientsByDayItemDTO struct {
	Client    string   `json:"client"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Services  []string `json:"services"`
}
