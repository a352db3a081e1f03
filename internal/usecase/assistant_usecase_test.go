package usecase

import (
	"context"
	"testing"

	"github.com/aquasentinel/internal/assistant"
	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/usecase/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAssistantChat_AppendsTurns(t *testing.T) {
	uc := NewAssistantUseCase(assistant.NewRouter(), zap.NewNop())

	transcript := []domain.ChatMessage{
		{Role: domain.ChatRoleAssistant, Content: assistant.Greeting},
	}

	resp, err := uc.Chat(context.Background(), dto.ChatRequest{
		Message:    "What's the pollution level here?",
		Transcript: transcript,
	})
	require.NoError(t, err)

	require.Len(t, resp.Transcript, 3)
	assert.Equal(t, domain.ChatRoleUser, resp.Transcript[1].Role)
	assert.Equal(t, "What's the pollution level here?", resp.Transcript[1].Content)
	assert.Equal(t, domain.ChatRoleAssistant, resp.Transcript[2].Role)
	assert.Equal(t, resp.Reply, resp.Transcript[2].Content)
	assert.Contains(t, resp.Reply, "pollution levels vary across regions")
}

func TestAssistantChat_HistoryDoesNotInfluenceMatching(t *testing.T) {
	uc := NewAssistantUseCase(assistant.NewRouter(), zap.NewNop())

	// Same message, wildly different histories: identical reply
	first, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "draft a complaint"})
	require.NoError(t, err)

	second, err := uc.Chat(context.Background(), dto.ChatRequest{
		Message: "draft a complaint",
		Transcript: []domain.ChatMessage{
			{Role: domain.ChatRoleUser, Content: "tell me about the forecast"},
			{Role: domain.ChatRoleAssistant, Content: "..."},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, first.Reply, second.Reply)
}

func TestAssistantChat_EmptyMessageGetsFallback(t *testing.T) {
	uc := NewAssistantUseCase(assistant.NewRouter(), zap.NewNop())

	resp, err := uc.Chat(context.Background(), dto.ChatRequest{Message: ""})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Reply)
}

func TestAssistantGreeting(t *testing.T) {
	uc := NewAssistantUseCase(assistant.NewRouter(), zap.NewNop())

	resp := uc.Greeting(context.Background())
	assert.Equal(t, assistant.Greeting, resp.Message)
	assert.Equal(t, assistant.QuickActions, resp.QuickActions)
}
