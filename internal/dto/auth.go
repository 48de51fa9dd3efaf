package dto

type RegisterRequestDTO struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CUIT      string `json:"cuit,omitempty" example:"20345678901"`
}

type RegisterResponseDTO struct {
	Message string          `json:"message"`
	User    UserResponseDTO `json:"user"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type UserResponseDTO struct {
	ID             int    `json:"id" example:"1"`
	Username       string `json:"username" example:"lpanozzo"`
	Email          string `json:"email" example:"lpanozzo@example.com"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	IsOwner        bool   `json:"is_owner"`
	IsProfessional bool   `json:"is_professional"`
	IsSecretary    bool   `json:"is_secretary"`
	CUIT           string `json:"cuit,omitempty"`
}

// UpdateProfileRequestDTO carries the editable profile fields; nil means
// "leave unchanged".
type UpdateProfileRequestDTO struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	CUIT      *string `json:"cuit,omitempty"`
	Password  *string `json:"password,omitempty"`
}

type SetRolesRequestDTO struct {
	IsOwner        bool `json:"is_owner"`
	IsProfessional bool `json:"is_professional"`
	IsSecretary    bool `json:"is_secretary"`
}
