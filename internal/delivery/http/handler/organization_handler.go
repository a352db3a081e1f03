package handler

import (
	"github.com/aquasentinel/internal/pkg/utils"
	"github.com/aquasentinel/internal/pkg/validator"
	"github.com/aquasentinel/internal/usecase"
	"github.com/aquasentinel/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrganizationHandler - обработчик запросов организаций-респондентов
type OrganizationHandler struct {
	orgUC  *usecase.OrganizationUseCase
	logger *zap.Logger
}

// NewOrganizationHandler - создание нового OrganizationHandler
func NewOrganizationHandler(orgUC *usecase.OrganizationUseCase, logger *zap.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		orgUC:  orgUC,
		logger: logger,
	}
}

// GetOrganizations - организации с расстоянием от пользователя
// @Summary Get responder organizations
// @Description Returns organizations ordered by name with a rounded distance from the caller's coordinates; missing coordinates fall back to the configured defaults
// @Tags organizations
// @Produce json
// @Param type query string false "Filter: All, Authority, Corporation, NGO"
// @Param lat query number false "Caller latitude"
// @Param lng query number false "Caller longitude"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/organizations [get]
func (h *OrganizationHandler) GetOrganizations(c *fiber.Ctx) error {
	req := dto.OrganizationsRequest{
		Type: c.Query("type"),
	}

	// Coordinates are optional, absent values keep the default fallback
	if c.Query("lat") != "" && c.Query("lng") != "" {
		lat := c.QueryFloat("lat")
		lng := c.QueryFloat("lng")
		req.Lat = &lat
		req.Lng = &lng
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.orgUC.GetOrganizations(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
