package dto

// UserDTO represents a data transfer object (DTO) for a user.
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserRegisterDTO represents a data transfer object (DTO) for a user registration form.
type UserRegisterDTO struct {
	Username string `schema:"username"`
	Password string `schema:"password"`
}
