package usecase

import (
	"context"

	"github.com/aquasentinel/internal/assistant"
	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/usecase/dto"
	"go.uber.org/zap"
)

// AssistantUseCase ведёт диалоговый ход: добавляет реплику пользователя,
// выбирает ответ по таблице правил и добавляет реплику ассистента.
// История диалога не влияет на выбор ответа, каждый ход независим.
type AssistantUseCase struct {
	router *assistant.Router
	logger *zap.Logger
}

func NewAssistantUseCase(router *assistant.Router, logger *zap.Logger) *AssistantUseCase {
	return &AssistantUseCase{
		router: router,
		logger: logger,
	}
}

// Chat выполняет один ход диалога и возвращает дополненный транскрипт.
// Любой вход, включая пустой, получает непустой ответ.
func (uc *AssistantUseCase) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	reply := uc.router.Reply(req.Message)

	transcript := append(req.Transcript,
		domain.ChatMessage{Role: domain.ChatRoleUser, Content: req.Message},
		domain.ChatMessage{Role: domain.ChatRoleAssistant, Content: reply},
	)

	if rule := uc.router.Match(req.Message); rule != nil {
		uc.logger.Debug("Assistant rule matched", zap.String("rule", rule.Name))
	} else {
		uc.logger.Debug("Assistant fallback response")
	}

	return &dto.ChatResponse{
		Reply:      reply,
		Transcript: transcript,
	}, nil
}

// Greeting возвращает первую реплику ассистента и быстрые действия
func (uc *AssistantUseCase) Greeting(ctx context.Context) *dto.GreetingResponse {
	return &dto.GreetingResponse{
		Message:      assistant.Greeting,
		QuickActions: assistant.QuickActions,
	}
}
