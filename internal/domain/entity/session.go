package entity

import "time"

// Session is the explicit record of an authenticated user. It is passed
// through the service call boundary instead of living in ambient global
// state, so authorization checks stay testable.
//
// SID changes on every login and refresh; a token whose sid no longer
// matches the stored session is rejected.
type Session struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	SID       string    `json:"sid"`
	CreatedAt time.Time `json:"createdAt"`
}
