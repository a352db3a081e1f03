package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/pkg/errors"
	"github.com/aquasentinel/internal/usecase/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReportRepo struct {
	inserted *domain.PollutionReport
	recent   []*domain.PollutionReport
	err      error
}

func (f *fakeReportRepo) GetRecent(ctx context.Context, limit int) ([]*domain.PollutionReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.recent) {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (*domain.PollutionReport, error) {
	return nil, errors.ErrReportNotFound
}

func (f *fakeReportRepo) Insert(ctx context.Context, report *domain.PollutionReport) (*domain.PollutionReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *report
	stored.ID = "r-1"
	f.inserted = &stored
	return &stored, nil
}

type fakeStreamRepo struct {
	published []*domain.ReportSubmittedEvent
	err       error
}

func (f *fakeStreamRepo) PublishReportSubmitted(ctx context.Context, event *domain.ReportSubmittedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, event)
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

func validRequest() dto.SubmitReportRequest {
	return dto.SubmitReportRequest{
		LocationLat:         19.0760,
		LocationLng:         72.8777,
		Category:            domain.CategoryPlastic,
		Description:         "Plastic accumulation near the shore",
		PlasticDensityIndex: 55,
		WaterClarityLevel:   domain.ClarityModerate,
		ReportedBy:          "Asha",
	}
}

func TestSubmitReport_Success(t *testing.T) {
	repo := &fakeReportRepo{}
	stream := &fakeStreamRepo{}
	uc := NewReportUseCase(repo, stream, zap.NewNop())

	stored, err := uc.SubmitReport(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "r-1", stored.ID)
	assert.Equal(t, domain.StatusNew, stored.Status)
	assert.Equal(t, "Asha", stored.ReportedBy)
	assert.Equal(t, 55, stored.PlasticDensityIndex)

	require.Len(t, stream.published, 1)
	assert.Equal(t, "r-1", stream.published[0].ReportID)
}

func TestSubmitReport_InvalidLocation(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, nil, zap.NewNop())

	tests := []struct {
		name     string
		lat, lng float64
	}{
		{"latitude out of range", 91, 0},
		{"longitude out of range", 0, -181},
		{"NaN latitude", math.NaN(), 72.8777},
		{"infinite longitude", 19.0760, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.LocationLat = tt.lat
			req.LocationLng = tt.lng

			stored, err := uc.SubmitReport(context.Background(), req)
			assert.Nil(t, stored)
			assert.Equal(t, errors.ErrInvalidLocation, err)
		})
	}
}

func TestSubmitReport_InvalidCategory(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, nil, zap.NewNop())

	req := validRequest()
	req.Category = "Plastic-ish"

	stored, err := uc.SubmitReport(context.Background(), req)
	assert.Nil(t, stored)
	assert.Equal(t, errors.ErrInvalidCategory, err)
}

func TestSubmitReport_DensityClamped(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewReportUseCase(repo, nil, zap.NewNop())

	req := validRequest()
	req.PlasticDensityIndex = -5
	stored, err := uc.SubmitReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.PlasticDensityIndex)

	req.PlasticDensityIndex = 150
	stored, err = uc.SubmitReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.PlasticDensityIndex)
}

func TestSubmitReport_AnonymousReporter(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, nil, zap.NewNop())

	for _, name := range []string{"", "   ", "\t"} {
		req := validRequest()
		req.ReportedBy = name

		stored, err := uc.SubmitReport(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Anonymous", stored.ReportedBy)
	}
}

func TestSubmitReport_StatusForcedToNew(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, nil, zap.NewNop())

	req := validRequest()
	req.Status = domain.StatusResolved

	stored, err := uc.SubmitReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, stored.Status)
}

func TestSubmitReport_StreamFailureIsSoft(t *testing.T) {
	repo := &fakeReportRepo{}
	stream := &fakeStreamRepo{err: errors.ErrCacheError}
	uc := NewReportUseCase(repo, stream, zap.NewNop())

	stored, err := uc.SubmitReport(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestGetRecentReports_LimitDefaults(t *testing.T) {
	recent := make([]*domain.PollutionReport, 30)
	for i := range recent {
		recent[i] = &domain.PollutionReport{ID: "r", Status: domain.StatusNew}
	}
	repo := &fakeReportRepo{recent: recent}
	uc := NewReportUseCase(repo, nil, zap.NewNop())

	reports, err := uc.GetRecentReports(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, reports, 10)

	reports, err = uc.GetRecentReports(context.Background(), 500)
	require.NoError(t, err)
	assert.Len(t, reports, 30)
}
