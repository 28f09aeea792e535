package models

// Absence records a worker's inability to cover an assigned shift,
// optionally naming a replacement worker.
type Absence struct {
	ID                string        `json:"id"`
	ShiftID           string        `json:"shift_id"`
	Reason            string        `json:"reason"`
	ReplacementUserID *string       `json:"replacement_user_id"`
	Status            RequestStatus `json:"status"`
	CreatedAt         string        `json:"created_at"`
}
