package handlers

import (
	"weddingconsole/services/auth"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// AuthService backs the session middleware.
	AuthService auth.AuthService

	Auth            *AuthHandler
	Admin           *AdminHandler
	HallManager     *HallManagerHandler
	ServiceProvider *ServiceProviderHandler
	Booking         *BookingHandler
}
