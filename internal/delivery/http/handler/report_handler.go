package handler

import (
	"github.com/aquasentinel/internal/pkg/utils"
	"github.com/aquasentinel/internal/pkg/validator"
	"github.com/aquasentinel/internal/usecase"
	"github.com/aquasentinel/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReportHandler - обработчик пользовательских отчётов о загрязнении
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

// NewReportHandler - создание нового ReportHandler
func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// SubmitReport - отправка нового отчёта
// @Summary Submit a pollution report
// @Description Validates and normalizes a citizen-submitted observation, then stores it with status New
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.SubmitReportRequest true "Report"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/reports [post]
func (h *ReportHandler) SubmitReport(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.reportUC.SubmitReport(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// GetRecentReports - последние отчёты, новые первыми
// @Summary Get recent pollution reports
// @Tags reports
// @Produce json
// @Param limit query int false "Max reports to return (default 10, max 100)"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/reports [get]
func (h *ReportHandler) GetRecentReports(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	reports, err := h.reportUC.GetRecentReports(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"reports": reports,
	}, &utils.Meta{
		Total: len(reports),
	})
}
