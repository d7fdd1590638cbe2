package kvstore

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
)

// Collection names shared by the repositories and ResetDemoData, so demo
// seeding always lands on the keys the repositories read.
const (
	lostItemsCollection   = "lost-items"
	foundItemsCollection  = "found-items"
	experiencesCollection = "experiences"
)

// ResetDemoData rewrites the demo listing and testimonial collections under
// the repository keys for the given store version. Existing listing data is
// replaced; users and sessions are untouched.
func ResetDemoData(ctx context.Context, store Store, version string, logger *logrus.Logger) error {
	now := time.Now()
	lost := NewCollection[entity.Item](store, CollectionKey(lostItemsCollection, version), nil, logger)
	if err := lost.Save(ctx, SeedLostItems(now)); err != nil {
		return err
	}
	found := NewCollection[entity.Item](store, CollectionKey(foundItemsCollection, version), nil, logger)
	if err := found.Save(ctx, SeedFoundItems(now)); err != nil {
		return err
	}
	exps := NewCollection[entity.UserExperience](store, CollectionKey(experiencesCollection, version), nil, logger)
	return exps.Save(ctx, SeedExperiences(now))
}

// Default seed data, used when a collection key is absent or corrupted and
// by cmd/seed. Mirrors the demo listings the product ships with.

func SeedLostItems(now time.Time) []entity.Item {
	return []entity.Item{
		{
			ID:            "l1",
			Type:          entity.ItemTypeLost,
			Title:         "Black Hydro Flask Water Bottle",
			Description:   "A standard size black Hydro Flask with a few stickers on it, one of a mountain range.",
			Category:      "Bottle",
			Location:      "Library, 2nd Floor",
			ImageURL:      "https://images.unsplash.com/photo-1602143407151-7111542de6e8?q=80&w=400&auto=format&fit=crop",
			ContactNumber: "918088199509",
			Timestamp:     now.Add(-24 * time.Hour),
		},
		{
			ID:            "l2",
			Type:          entity.ItemTypeLost,
			Title:         "AirPods Pro in White Case",
			Description:   "Standard AirPods Pro charging case. Has a small scratch on the front.",
			Category:      "Electronics",
			Location:      "Student Union Food Court",
			ImageURL:      "https://images.unsplash.com/photo-1610438235354-a6ae5528385c?q=80&w=400&auto=format&fit=crop",
			ContactNumber: "918088199509",
			Timestamp:     now.Add(-48 * time.Hour),
		},
		{
			ID:            "l3",
			Type:          entity.ItemTypeLost,
			Title:         "Blue Jansport Backpack",
			Description:   "A classic blue Jansport backpack. Contains a chemistry textbook and a laptop.",
			Category:      "Bag",
			Location:      "Bus Stop near Engineering Building",
			ImageURL:      "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=400&h=250&dpr=1",
			ContactNumber: "918088199509",
			Timestamp:     now.Add(-5 * 24 * time.Hour),
		},
	}
}

func SeedFoundItems(now time.Time) []entity.Item {
	return []entity.Item{
		{
			ID:            "f1",
			Type:          entity.ItemTypeFound,
			Title:         "iPhone 13 with a clear case",
			Description:   "An iPhone 13 in a clear case with a flower design on the back. The lock screen is a picture of a cat.",
			Category:      "Electronics",
			Location:      "Found in Lecture Hall C",
			ImageURL:      "/case.png",
			ContactNumber: "918088199509",
			Timestamp:     now.Add(-1 * time.Hour),
		},
		{
			ID:            "f2",
			Type:          entity.ItemTypeFound,
			Title:         "Set of keys on a university lanyard",
			Description:   "A set of three keys on a blue and gold university lanyard. One key is a car key.",
			Category:      "Keys",
			Location:      "Turned in at the Campus Center desk",
			ImageURL:      "/keys.png",
			ContactNumber: "918088199509",
			Timestamp:     now.Add(-4 * 24 * time.Hour),
		},
	}
}

func SeedExperiences(now time.Time) []entity.UserExperience {
	return []entity.UserExperience{
		{
			ID:        "e1",
			Name:      "Sarah J.",
			AvatarURL: "https://i.pravatar.cc/150?u=sarahj",
			Rating:    5,
			Comment:   "I lost my favorite water bottle and thought it was gone forever. Found it on here the next day! So grateful for this app.",
			Timestamp: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:        "e2",
			Name:      "Mike R.",
			AvatarURL: "https://i.pravatar.cc/150?u=miker",
			Rating:    5,
			Comment:   "Found a pair of AirPods and was able to connect with the owner super easily through WhatsApp. The whole process was seamless.",
			Timestamp: now.Add(-7 * 24 * time.Hour),
		},
		{
			ID:        "e3",
			Name:      "Jessica Chen",
			AvatarURL: "https://i.pravatar.cc/150?u=jessicachen",
			Rating:    4,
			Comment:   "The AI image suggestion is surprisingly accurate and saved me a lot of time when I reported a lost textbook. Great feature!",
			Timestamp: now.Add(-12 * 24 * time.Hour),
		},
	}
}
