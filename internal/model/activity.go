package model

import "time"

// Activity records one mutating action applied to a session.
type Activity struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	ChangedBy string    `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}
