package application

import (
	"context"
	"sort"
	"sync"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/gateway"
)

// In-memory fakes so service behavior is tested without the store or the
// remote model.

type fakeItemRepo struct {
	mu    sync.Mutex
	items []entity.Item
}

func (r *fakeItemRepo) List(ctx context.Context, t entity.ItemType) ([]entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Item{}
	for _, it := range r.items {
		if it.Type == t {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Add(ctx context.Context, it entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entity.Item{it}, r.items...)
	return nil
}

func (r *fakeItemRepo) MarkRetrieved(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Retrieved = true
		}
	}
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, it := range r.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users []entity.User
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, u entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]entity.Session)}
}

func (s *fakeSessionStore) Put(ctx context.Context, sess entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.UserID] = sess
	return nil
}

func (s *fakeSessionStore) Get(ctx context.Context, userID string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

func (s *fakeSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type fakeExperienceRepo struct {
	mu   sync.Mutex
	exps []entity.UserExperience
}

func (r *fakeExperienceRepo) List(ctx context.Context) ([]entity.UserExperience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]entity.UserExperience{}, r.exps...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *fakeExperienceRepo) Add(ctx context.Context, exp entity.UserExperience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exps = append([]entity.UserExperience{exp}, r.exps...)
	return nil
}

type fakeMatcher struct {
	details *gateway.ItemDetails
	ids     []string
	err     error

	// onFind, when set, runs inside FindMatches before returning. Used to
	// block a call while a newer search supersedes it.
	onFind func()

	mu            sync.Mutex
	gotQuery      string
	gotCandidates []gateway.Candidate
	calls         int
}

func (m *fakeMatcher) ExtractDetails(ctx context.Context, image []byte, mimeType string) (*gateway.ItemDetails, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.details, nil
}

func (m *fakeMatcher) FindMatches(ctx context.Context, query string, candidates []gateway.Candidate) ([]string, error) {
	m.mu.Lock()
	m.gotQuery = query
	m.gotCandidates = candidates
	m.calls++
	m.mu.Unlock()
	if m.onFind != nil {
		m.onFind()
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.ids, nil
}

func (m *fakeMatcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
