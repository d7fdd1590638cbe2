package entity

import "time"

// ItemType partitions listings into the two logical collections.
type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

// Valid reports whether t is one of the known listing types.
func (t ItemType) Valid() bool {
	return t == ItemTypeLost || t == ItemTypeFound
}

// Opposite returns the other listing side. Searching while viewing lost
// items matches against found items and vice versa.
func (t ItemType) Opposite() ItemType {
	if t == ItemTypeLost {
		return ItemTypeFound
	}
	return ItemTypeLost
}

// Prefix is the single-character id prefix for items of this type.
func (t ItemType) Prefix() string {
	if t == ItemTypeLost {
		return "l"
	}
	return "f"
}

// Item is a single lost or found report.
//
// Retrieved only ever transitions false -> true, and only the user whose id
// matches OwnerID may flip it or delete the item.
type Item struct {
	ID            string    `json:"id"`
	Type          ItemType  `json:"type"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Location      string    `json:"location"`
	ImageURL      string    `json:"imageUrl"`
	ContactNumber string    `json:"contactNumber"`
	Timestamp     time.Time `json:"timestamp"`
	OwnerID       string    `json:"ownerId"`
	Retrieved     bool      `json:"retrieved"`
}
