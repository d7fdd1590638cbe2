package kvstore

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

const keyPrefix = "foundit"

// CollectionKey builds the namespaced, versioned key for a logical
// collection. Bumping the version tag abandons all previously stored data
// for that collection; there is no in-place schema migration.
func CollectionKey(name, version string) string {
	return keyPrefix + ":" + name + ":" + version
}

// SessionKey is the unversioned key holding the session record for a user.
func SessionKey(userID string) string {
	return keyPrefix + ":session:" + userID
}

// UsersKey is the unversioned key holding the users collection.
func UsersKey() string {
	return keyPrefix + ":users"
}

// Collection is a JSON-serialized slice of records under a single store
// key. Load is self-healing: a missing key or a corrupted value reseeds the
// store with the defaults and returns them, so callers never see a load
// failure caused by bad stored data.
type Collection[T any] struct {
	store  Store
	key    string
	seed   []T
	logger *logrus.Logger
}

func NewCollection[T any](store Store, key string, seed []T, logger *logrus.Logger) *Collection[T] {
	return &Collection[T]{store: store, key: key, seed: seed, logger: logger}
}

// Load returns the stored records, seeding the store with the defaults when
// the key is absent or unparseable. Only store transport errors are
// returned; corruption is recovered locally.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if ok {
		var out []T
		if jsonErr := json.Unmarshal(raw, &out); jsonErr == nil {
			return out, nil
		} else if c.logger != nil {
			c.logger.WithError(jsonErr).WithField("key", c.key).Warn("corrupted collection, reseeding")
		}
	}
	if err := c.Save(ctx, c.seed); err != nil {
		return nil, err
	}
	out := make([]T, len(c.seed))
	copy(out, c.seed)
	return out, nil
}

// Save persists the full collection, replacing the previous value.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, b)
}
