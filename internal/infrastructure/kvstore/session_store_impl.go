package kvstore

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/repository"
)

// SessionStore persists one session record per user id. An unreadable
// record behaves like an absent one; logout simply deletes the key.
type SessionStore struct {
	store  Store
	logger *logrus.Logger
}

func NewSessionStore(store Store, logger *logrus.Logger) *SessionStore {
	return &SessionStore{store: store, logger: logger}
}

func (s *SessionStore) Put(ctx context.Context, sess entity.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, SessionKey(sess.UserID), b)
}

func (s *SessionStore) Get(ctx context.Context, userID string) (*entity.Session, error) {
	raw, ok, err := s.store.Get(ctx, SessionKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var sess entity.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("user_id", userID).Warn("unreadable session record")
		}
		return nil, nil
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	return s.store.Del(ctx, SessionKey(userID))
}

var _ repository.SessionStore = (*SessionStore)(nil)
