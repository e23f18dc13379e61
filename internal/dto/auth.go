package dto

type LoginRequestDTO struct {
	Email    string `json:"email"    validate:"required,email" message:"Please enter a valid email address."`
	Password string `json:"password" validate:"required,min=6" message:"Password must be at least 6 characters."`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
