package gateway

import (
	"context"
	"errors"
)

var (
	// ErrAnalysisFailed means the remote model could not analyze an image
	// (transport or parse failure). Callers degrade to manual entry.
	ErrAnalysisFailed = errors.New("image analysis failed")
	// ErrSearchFailed means the remote model call for a search failed.
	// Distinct from an empty result, which is a valid "no match".
	ErrSearchFailed = errors.New("search failed")
)

// ItemDetails is the structured reply of an image analysis.
type ItemDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Candidate is the reduced item projection sent to the matching service.
type Candidate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
}

// Matcher is the AI matching capability. All relevance judgment is
// delegated to the remote service; implementations do no local ranking.
// Tests substitute a deterministic fake.
type Matcher interface {
	ExtractDetails(ctx context.Context, image []byte, mimeType string) (*ItemDetails, error)
	FindMatches(ctx context.Context, query string, candidates []Candidate) ([]string, error)
}
