package domain

// Profile is the logged-in member's account view as the backend's
// user search returns it: contact details plus the member's own
// bookings keyed by booking ID.
type Profile struct {
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	ProfileImage string               `json:"profileImage,omitempty"`
	MyBookings   map[string]MyBooking `json:"myBookings,omitempty"`
}

// MyBooking is a reservation as it appears on the member's own page.
// It carries the guest's name and phone, unlike the host dashboard's
// Booking which identifies guests separately.
type MyBooking struct {
	BookingID int64         `json:"bookingId"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Headcount int           `json:"headcount"`
	Status    BookingStatus `json:"status"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
}
