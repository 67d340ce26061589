package handler

import "time"

// --- Request / Response types ---

type createMeetingRequest struct {
	Title        string    `json:"title"        validate:"required"`
	Date         time.Time `json:"date"         validate:"required"`
	Participants []string  `json:"participants"`
	Description  string    `json:"description"`
}

// updateMeetingRequest carries a partial update: nil fields are left
// unchanged. Owner and creation timestamp are not client-settable.
type updateMeetingRequest struct {
	Title        *string    `json:"title"`
	Date         *time.Time `json:"date"`
	Participants *[]string  `json:"participants"`
	Description  *string    `json:"description"`
}

// meetingResponse is the transport view of a meeting. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type meetingResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	Participants []string  `json:"participants"`
	Description  string    `json:"description,omitempty"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
