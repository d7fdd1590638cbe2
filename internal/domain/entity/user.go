package entity

import "time"

// User is an account that may report items. PasswordHash holds a bcrypt
// hash; raw passwords are never persisted. Email is optional and only used
// for notifications.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
