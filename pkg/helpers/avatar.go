package helpers

import "github.com/google/uuid"

// RandomAvatarURL returns a pseudo-random avatar for a testimonial. The
// uuid seed just picks a distinct pravatar image per post.
func RandomAvatarURL() string {
	return "https://i.pravatar.cc/150?u=" + uuid.NewString()
}
