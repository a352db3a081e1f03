package handler

import (
	"github.com/aquasentinel/internal/pkg/utils"
	"github.com/aquasentinel/internal/pkg/validator"
	"github.com/aquasentinel/internal/usecase"
	"github.com/aquasentinel/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssistantHandler - обработчик диалога с ассистентом
type AssistantHandler struct {
	assistantUC *usecase.AssistantUseCase
	logger      *zap.Logger
}

// NewAssistantHandler - создание нового AssistantHandler
func NewAssistantHandler(assistantUC *usecase.AssistantUseCase, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistantUC: assistantUC,
		logger:      logger,
	}
}

// Chat - один ход диалога
// @Summary Chat with the assistant
// @Description Routes the message through the ordered rule table and returns the reply with the extended transcript; unmatched input gets the capability summary
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message and transcript"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/assistant/chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.assistantUC.Chat(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Greeting - первая реплика ассистента и быстрые действия
// @Summary Get the assistant greeting
// @Tags assistant
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/assistant/greeting [get]
func (h *AssistantHandler) Greeting(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.assistantUC.Greeting(c.Context()), nil)
}
