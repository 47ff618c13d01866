package domain

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking is a reservation as the backend reports it to the host
// dashboard. Dates are wire-format YYYY-MM-DD strings.
type Booking struct {
	ID        int64         `json:"id"`
	GuestName string        `json:"guestName,omitempty"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Headcount int           `json:"headcount"`
	Status    BookingStatus `json:"status"`
}

// BookingRequest is the create payload built at submission time from
// the selected range and guest count. It exists only for the duration
// of one call.
type BookingRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Headcount int    `json:"headcount"`
}

// BookingStatusUpdate is the host's confirm/cancel decision.
type BookingStatusUpdate struct {
	Status BookingStatus `json:"status"`
}
