package models

// ShiftType is one of the three fixed daily slots.
type ShiftType string

const (
	ShiftFirst  ShiftType = "1"
	ShiftSecond ShiftType = "2"
	ShiftThird  ShiftType = "3"
)

// RequestStatus is shared by shifts and absences.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Shift is one work assignment for one worker on one calendar date.
// Date carries no time component and is formatted YYYY-MM-DD.
type Shift struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Date      string        `json:"date"`
	ShiftType ShiftType     `json:"shift_type"`
	Status    RequestStatus `json:"status"`
	CreatedAt string        `json:"created_at"`
}

// ShiftWithUser is a shift joined with its owning user.
type ShiftWithUser struct {
	Shift
	Users User `json:"users"`
}
