package handler

import (
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/pkg/errors"
	"github.com/aquasentinel/internal/pkg/utils"
	"github.com/aquasentinel/internal/pkg/validator"
	"github.com/aquasentinel/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PreferencesHandler - обработчик клиентских настроек.
// Единственная настройка - флаг просмотра туториала.
type PreferencesHandler struct {
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

// NewPreferencesHandler - создание нового PreferencesHandler
func NewPreferencesHandler(cacheRepo repository.CacheRepository, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetTutorial - прочитать флаг просмотра туториала
// @Summary Get the tutorial-seen flag
// @Tags preferences
// @Produce json
// @Param client_id query string true "Client identifier"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/preferences/tutorial [get]
func (h *PreferencesHandler) GetTutorial(c *fiber.Ctx) error {
	clientID := c.Query("client_id")
	if clientID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	seen, err := h.cacheRepo.GetTutorialSeen(c.Context(), clientID)
	if err != nil {
		return utils.SendError(c, errors.ErrCacheError)
	}

	return utils.SendSuccess(c, dto.TutorialResponse{Seen: seen}, nil)
}

// SetTutorial - сохранить флаг просмотра туториала
// @Summary Set the tutorial-seen flag
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body dto.TutorialRequest true "Flag"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/preferences/tutorial [put]
func (h *PreferencesHandler) SetTutorial(c *fiber.Ctx) error {
	var req dto.TutorialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.cacheRepo.SetTutorialSeen(c.Context(), req.ClientID, req.Seen); err != nil {
		return utils.SendError(c, errors.ErrCacheError)
	}

	return utils.SendSuccess(c, dto.TutorialResponse{Seen: req.Seen}, nil)
}
