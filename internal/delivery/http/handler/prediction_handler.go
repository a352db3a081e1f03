package handler

import (
	"github.com/aquasentinel/internal/pkg/utils"
	"github.com/aquasentinel/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PredictionHandler - обработчик запросов прогнозов риска
type PredictionHandler struct {
	predictionUC *usecase.PredictionUseCase
	logger       *zap.Logger
}

// NewPredictionHandler - создание нового PredictionHandler
func NewPredictionHandler(predictionUC *usecase.PredictionUseCase, logger *zap.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionUC: predictionUC,
		logger:       logger,
	}
}

// GetPredictions - список прогнозов со стилями отображения
// @Summary Get AI risk predictions
// @Description Returns precomputed forecasts decorated with risk level color and icon
// @Tags predictions
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/predictions [get]
func (h *PredictionHandler) GetPredictions(c *fiber.Ctx) error {
	result, err := h.predictionUC.GetPredictions(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
