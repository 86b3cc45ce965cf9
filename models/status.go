package models

// Status is the lifecycle state shared by service providers, hall managers and bookings.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed" // service bookings only
)

// EntityKind names the three approvable record kinds.
type EntityKind string

const (
	KindServiceProvider EntityKind = "serviceProvider"
	KindHallManager     EntityKind = "hallManager"
	KindBooking         EntityKind = "booking"
)

// Action is a status change requested from a dashboard.
type Action string

const (
	ActionApprove        Action = "approve"
	ActionReject         Action = "reject"
	ActionCompleteToggle Action = "completeToggle"
)

// Collection names used in the document store.
const (
	CollectionServiceProviders = "serviceProviders"
	CollectionHallManagers     = "hallManagers"
	CollectionBookings         = "bookings"
	CollectionWeddingHalls     = "weddingHalls"
	CollectionBookingLocks     = "bookingLocks"
)

// KindFromPath maps the plural URL segment used by the admin API to an EntityKind.
func KindFromPath(segment string) (EntityKind, bool) {
	switch segment {
	case "service-providers":
		return KindServiceProvider, true
	case "hall-managers":
		return KindHallManager, true
	case "bookings":
		return KindBooking, true
	}
	return "", false
}
