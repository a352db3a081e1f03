package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReportRepo struct{}

func (f *fakeReportRepo) GetRecent(ctx context.Context, limit int) ([]*domain.PollutionReport, error) {
	return nil, nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (*domain.PollutionReport, error) {
	return nil, nil
}

func (f *fakeReportRepo) Insert(ctx context.Context, report *domain.PollutionReport) (*domain.PollutionReport, error) {
	stored := *report
	stored.ID = "r-1"
	return &stored, nil
}

type fakeStreamRepo struct{}

func (f *fakeStreamRepo) PublishReportSubmitted(ctx context.Context, event *domain.ReportSubmittedEvent) error {
	return nil
}

func (f *fakeStreamRepo) ReadReportSubmitted(ctx context.Context, group, consumer string, count int64) ([]repository.StreamMessage, error) {
	return nil, nil
}

func (f *fakeStreamRepo) AckReportSubmitted(ctx context.Context, group, messageID string) error {
	return nil
}

func (f *fakeStreamRepo) EnsureGroup(ctx context.Context, group string) error {
	return nil
}

type fakeOrgRepo struct {
	orgs []*domain.Organization
}

func (f *fakeOrgRepo) GetAll(ctx context.Context, types []string) ([]*domain.Organization, error) {
	return f.orgs, nil
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newReportApp() *fiber.App {
	reportUC := usecase.NewReportUseCase(&fakeReportRepo{}, &fakeStreamRepo{}, zap.NewNop())
	h := NewReportHandler(reportUC, zap.NewNop())

	app := fiber.New()
	app.Post("/api/v1/reports", h.SubmitReport)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) errorBody {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body errorBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestSubmitReport_OutOfRangeCoordinatesReturn400(t *testing.T) {
	app := newReportApp()

	resp := postJSON(t, app, "/api/v1/reports", fiber.Map{
		"location_lat":          91.0,
		"location_lng":          72.8777,
		"category":              domain.CategoryPlastic,
		"plastic_density_index": 40,
		"water_clarity_level":   domain.ClarityClear,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "INVALID_LOCATION", body.Error.Code)
}

func TestSubmitReport_UnknownCategoryReturns400(t *testing.T) {
	app := newReportApp()

	resp := postJSON(t, app, "/api/v1/reports", fiber.Map{
		"location_lat":          19.076,
		"location_lng":          72.8777,
		"category":              "Plastic-ish",
		"plastic_density_index": 40,
		"water_clarity_level":   domain.ClarityClear,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "INVALID_CATEGORY", body.Error.Code)
}

func TestSubmitReport_ValidatorFailureReturns400(t *testing.T) {
	app := newReportApp()

	resp := postJSON(t, app, "/api/v1/reports", fiber.Map{
		"location_lat":          19.076,
		"location_lng":          72.8777,
		"category":              domain.CategoryPlastic,
		"plastic_density_index": 40,
		"water_clarity_level":   "Crystal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
}

func TestGetOrganizations_InvalidCoordinatesFallBackToDefaults(t *testing.T) {
	orgRepo := &fakeOrgRepo{
		orgs: []*domain.Organization{
			{ID: "o-1", Name: "Central Pollution Control Board", Type: domain.OrgTypeAuthority, LocationLat: 28.7041, LocationLng: 77.1025},
		},
	}
	orgUC := usecase.NewOrganizationUseCase(orgRepo, zap.NewNop(), 19.0760, 72.8777)
	h := NewOrganizationHandler(orgUC, zap.NewNop())

	app := fiber.New()
	app.Get("/api/v1/organizations", h.GetOrganizations)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations?lat=120&lng=500", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	// Out-of-range coordinates are a soft failure: distances come
	// from the configured default point, not an error
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		Data struct {
			Organizations []struct {
				Name       string `json:"name"`
				DistanceKm int    `json:"distance_km"`
			} `json:"organizations"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Data.Organizations, 1)

	// Mumbai default -> Delhi is roughly 1150-1165 km
	distance := body.Data.Organizations[0].DistanceKm
	assert.GreaterOrEqual(t, distance, 1150)
	assert.LessOrEqual(t, distance, 1165)
}
