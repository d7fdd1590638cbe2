package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/founditapp/foundit-backend/internal/domain/gateway"
)

func TestMatchPromptInlinesCandidates(t *testing.T) {
	prompt, err := matchPrompt("black wallet", []gateway.Candidate{
		{ID: "f1", Title: "Leather wallet", Category: "Wallet", Location: "Library"},
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, `"black wallet"`)
	assert.Contains(t, prompt, `"f1"`)
	assert.Contains(t, prompt, "matching_ids")
	// The projection carries no owner or contact data.
	assert.NotContains(t, prompt, "ownerId")
	assert.NotContains(t, prompt, "contactNumber")
}

func TestMatchPromptEmptyCandidates(t *testing.T) {
	prompt, err := matchPrompt("wallet", nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "[]")
}
