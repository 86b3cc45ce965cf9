package models

// Venue keys select which booking field identifies the hall.
const (
	VenueKeyHall        = "hallId"
	VenueKeyHallManager = "hallManagerId"
)

// VenueRef identifies a bookable hall: either a hall manager listing or a legacy weddingHalls document.
type VenueRef struct {
	ID        string
	IsManager bool
}

// Key returns the booking field holding the venue id.
func (v VenueRef) Key() string {
	if v.IsManager {
		return VenueKeyHallManager
	}
	return VenueKeyHall
}

// Filter returns the bookings filter for this venue.
func (v VenueRef) Filter() Filter {
	if v.IsManager {
		return Filter{HallManagerID: v.ID}
	}
	return Filter{HallID: v.ID}
}

// Venue is the customer-facing read model of a hall.
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Price       Money    `json:"price"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address,omitempty"`
	Images      []string `json:"images,omitempty"`
}
