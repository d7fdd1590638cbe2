package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/founditapp/foundit-backend/internal/domain/gateway"
)

const defaultModel = "gemini-2.5-flash"

const extractPrompt = "Analyze this image from a lost and found context. Provide a concise title, " +
	"a brief but helpful description, and a single-word category " +
	"(e.g., Electronics, Apparel, Keys, Bag, Bottle, Other)."

// Matcher implements gateway.Matcher against the Gemini API. Both calls ask
// for structured JSON via a response schema, so replies parse directly into
// the fixed output shapes.
type Matcher struct {
	client *genai.Client
	model  string
	logger *logrus.Logger
}

func NewMatcher(ctx context.Context, apiKey, model string, logger *logrus.Logger) (*Matcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Matcher{client: client, model: model, logger: logger}, nil
}

func (m *Matcher) ExtractDetails(ctx context.Context, image []byte, mimeType string) (*gateway.ItemDetails, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(extractPrompt),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":       {Type: genai.TypeString},
				"description": {Type: genai.TypeString},
				"category":    {Type: genai.TypeString},
			},
		},
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.model, contents, cfg)
	if err != nil {
		if m.logger != nil {
			m.logger.WithError(err).Warn("gemini image analysis call failed")
		}
		return nil, fmt.Errorf("%w: %v", gateway.ErrAnalysisFailed, err)
	}

	var details gateway.ItemDetails
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &details); err != nil {
		return nil, fmt.Errorf("%w: parse reply: %v", gateway.ErrAnalysisFailed, err)
	}
	return &details, nil
}

func (m *Matcher) FindMatches(ctx context.Context, query string, candidates []gateway.Candidate) ([]string, error) {
	prompt, err := matchPrompt(query, candidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrSearchFailed, err)
	}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"matching_ids": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
		},
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), cfg)
	if err != nil {
		if m.logger != nil {
			m.logger.WithError(err).Warn("gemini match call failed")
		}
		return nil, fmt.Errorf("%w: %v", gateway.ErrSearchFailed, err)
	}

	var reply struct {
		MatchingIDs []string `json:"matching_ids"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &reply); err != nil {
		return nil, fmt.Errorf("%w: parse reply: %v", gateway.ErrSearchFailed, err)
	}
	if reply.MatchingIDs == nil {
		// A valid no-match reply, not a failure.
		return []string{}, nil
	}
	return reply.MatchingIDs, nil
}

// matchPrompt renders the search instruction with the candidate projection
// inlined as JSON. Relevance judgment is left entirely to the model.
func matchPrompt(query string, candidates []gateway.Candidate) (string, error) {
	if candidates == nil {
		candidates = []gateway.Candidate{}
	}
	b, err := json.Marshal(candidates)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`You are a smart search engine for a lost and found application. `+
		`A user is searching for an item. The user's query is: %q. `+
		`Here is a list of available items in JSON format: %s. `+
		`Compare the user's query to the title, description, category, and location of each item. `+
		`Return a JSON object with a single key, "matching_ids", which is an array of the "id" strings `+
		`of the most relevant items. Only include items that are a strong match. `+
		`If no items are a good match, return an empty array.`, query, string(b)), nil
}

var _ gateway.Matcher = (*Matcher)(nil)
