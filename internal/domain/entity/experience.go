package entity

import "time"

// UserExperience is a testimonial posted from the landing page. It is not
// tied to an account and there is no update or delete path; the collection
// is append-only.
type UserExperience struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}
