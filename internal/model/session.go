package model

import "time"

// Session authorizes requests carrying its token in the session_id header.
// A session is valid only while ExpiresAt is in the future; there is no
// sliding expiry and no reactivation.
type Session struct {
	Token     string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
