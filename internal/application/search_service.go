package application

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/gateway"
	"github.com/founditapp/foundit-backend/internal/domain/repository"
)

// SearchService runs AI-assisted semantic search. A search always targets
// the collection opposite the caller's active tab: someone browsing lost
// items is looking for a match among found ones, and vice versa.
//
// Each search acquires a per-principal generation token. Only the response
// matching the latest token may publish a result; anything older is
// reported as ErrStaleSearch. An empty query bumps the generation and
// returns idle without calling the gateway, so a slow in-flight search can
// never overwrite a cleared state.
type SearchService struct {
	Items   repository.ItemRepository
	Matcher gateway.Matcher
	Logger  *logrus.Logger

	mu   sync.Mutex
	gens map[string]uint64
}

func NewSearchService(items repository.ItemRepository, matcher gateway.Matcher, logger *logrus.Logger) *SearchService {
	return &SearchService{Items: items, Matcher: matcher, Logger: logger, gens: make(map[string]uint64)}
}

// SearchResult is the published outcome of one search generation.
type SearchResult struct {
	Query      string          `json:"query"`
	Searched   entity.ItemType `json:"searched"`
	Items      []entity.Item   `json:"items"`
	Generation uint64          `json:"generation"`
	Idle       bool            `json:"idle"`
}

func (s *SearchService) next(principal string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[principal]++
	return s.gens[principal]
}

func (s *SearchService) isCurrent(principal string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[principal] == gen
}

// Search matches the query against the collection opposite activeTab.
// An empty result slice is a valid "no match"; gateway failures surface as
// gateway.ErrSearchFailed unless a newer search already superseded this one.
func (s *SearchService) Search(ctx context.Context, principal string, activeTab entity.ItemType, query string) (*SearchResult, error) {
	if !activeTab.Valid() {
		return nil, ErrInvalidItem
	}
	gen := s.next(principal)
	target := activeTab.Opposite()

	if strings.TrimSpace(query) == "" {
		return &SearchResult{Searched: target, Items: []entity.Item{}, Generation: gen, Idle: true}, nil
	}

	items, err := s.Items.List(ctx, target)
	if err != nil {
		return nil, err
	}
	candidates := make([]gateway.Candidate, 0, len(items))
	for _, it := range items {
		candidates = append(candidates, gateway.Candidate{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Category:    it.Category,
			Location:    it.Location,
		})
	}

	ids, err := s.Matcher.FindMatches(ctx, query, candidates)
	if !s.isCurrent(principal, gen) {
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{"principal": principal, "generation": gen}).Debug("discarding superseded search result")
		}
		return nil, ErrStaleSearch
	}
	if err != nil {
		return nil, err
	}

	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	matched := make([]entity.Item, 0, len(ids))
	for _, it := range items {
		if _, ok := idSet[it.ID]; ok {
			matched = append(matched, it)
		}
	}
	return &SearchResult{Query: query, Searched: target, Items: matched, Generation: gen}, nil
}
