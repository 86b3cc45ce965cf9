package models

// The structs below are the view models returned to the dashboards. They replace
// the per-screen component state of the web client.

// AdminDashboardView backs the admin dashboard tabs.
type AdminDashboardView struct {
	PendingServiceProviders []ServiceProvider `json:"pendingServiceProviders"`
	ServiceProviders        []ServiceProvider `json:"serviceProviders"`
	PendingHallManagers     []HallManager     `json:"pendingHallManagers"`
	HallManagers            []HallManager     `json:"hallManagers"`
	PendingBookings         []Booking         `json:"pendingBookings"`
	Bookings                []Booking         `json:"bookings"`
}

// HallManagerDashboardView backs the hall-manager dashboard.
type HallManagerDashboardView struct {
	Hall            HallManager `json:"hall"`
	Bookings        []Booking   `json:"bookings"`
	PendingBookings []Booking   `json:"pendingBookings"`
}

// ServiceProviderDashboardView backs the service-provider dashboard.
type ServiceProviderDashboardView struct {
	Provider ServiceProvider `json:"provider"`
	Bookings []Booking       `json:"bookings"`
}

// HallBookingFormView backs the customer booking form.
type HallBookingFormView struct {
	Venue            Venue     `json:"venue"`
	VenueKey         string    `json:"venueKey"`
	ExistingBookings []Booking `json:"existingBookings"`
}
