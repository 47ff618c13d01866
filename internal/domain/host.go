package domain

type BlockType string

const (
	BlockMaintenance BlockType = "MAINTENANCE"
	BlockPersonal    BlockType = "PERSONAL"
)

// BlockedDate is a host-declared interval during which the pension
// cannot be booked, independent of existing reservations.
type BlockedDate struct {
	BlockedDateID int64     `json:"blockedDateId"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Reason        string    `json:"reason"`
	Type          BlockType `json:"type"`
}

// BlockedDateRequest creates a new block.
type BlockedDateRequest struct {
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason"`
	Type      BlockType `json:"type"`
}

// User is a site member as the host's user administration sees it.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}
