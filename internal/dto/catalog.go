package dto

type ServiceRequestDTO struct {
	Name  string  `json:"name" example:"Masaje descontracturante"`
	Price float64 `json:"price" example:"100.00"`
}

type ServiceResponseDTO struct {
	ID    int     `json:"id" example:"1"`
	Name  string  `json:"name" example:"Masaje descontracturante"`
	Price float64 `json:"price" example:"100.00"`
}

type PaymentTypeResponseDTO struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Efectivo"`
}
