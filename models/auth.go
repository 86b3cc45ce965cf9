package models

// Role is the session role carried in the JWT.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleHallManager     Role = "hallManager"
	RoleServiceProvider Role = "serviceProvider"
)

// RegistrationRequest is shared by service-provider and hall-manager sign-up.
type RegistrationRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Phone    string   `json:"phone"`
	Address  string   `json:"address"`
	Services []string `json:"services"`

	HallName        string `json:"hallName"`
	HallAddress     string `json:"hallAddress"`
	HallDescription string `json:"hallDescription"`
	HallCapacity    string `json:"hallCapacity"`
	HallPrice       string `json:"hallPrice"`
	HallPhone       string `json:"hallPhone"`
}

// LoginRequest is the body of the login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse contains the account ID, role and session token.
type AuthResponse struct {
	ID     string `json:"id"`
	Role   Role   `json:"role"`
	Token  string `json:"token"`
	Status Status `json:"status"`
}
