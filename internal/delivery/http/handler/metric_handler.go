package handler

import (
	"github.com/aquasentinel/internal/pkg/utils"
	"github.com/aquasentinel/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MetricHandler - обработчик запросов показателей мониторинга
type MetricHandler struct {
	metricUC *usecase.MetricUseCase
	logger   *zap.Logger
}

// NewMetricHandler - создание нового MetricHandler
func NewMetricHandler(metricUC *usecase.MetricUseCase, logger *zap.Logger) *MetricHandler {
	return &MetricHandler{
		metricUC: metricUC,
		logger:   logger,
	}
}

// GetMetrics - список показателей всех точек для карты
// @Summary Get pollution metrics
// @Description Returns all monitored locations with risk band, marker color, clarity badge and trend icon
// @Tags metrics
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/metrics [get]
func (h *MetricHandler) GetMetrics(c *fiber.Ctx) error {
	result, err := h.metricUC.GetMetrics(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetMetric - показатели одной точки
// @Summary Get a pollution metric by ID
// @Tags metrics
// @Produce json
// @Param id path string true "Metric ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/metrics/{id} [get]
func (h *MetricHandler) GetMetric(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := h.metricUC.GetMetric(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
