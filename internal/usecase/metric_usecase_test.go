package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/aquasentinel/internal/classify"
	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMetricRepo struct {
	metrics []*domain.PollutionMetric
	calls   int
}

func (f *fakeMetricRepo) GetAll(ctx context.Context) ([]*domain.PollutionMetric, error) {
	f.calls++
	return f.metrics, nil
}

func (f *fakeMetricRepo) GetByID(ctx context.Context, id string) (*domain.PollutionMetric, error) {
	for _, m := range f.metrics {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, errors.ErrMetricNotFound
}

type fakeCacheRepo struct {
	store map[string][]byte
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{store: make(map[string][]byte)}
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return f.store[key], nil
}

func (f *fakeCacheRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeCacheRepo) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeCacheRepo) GetTutorialSeen(ctx context.Context, clientID string) (bool, error) {
	return false, nil
}

func (f *fakeCacheRepo) SetTutorialSeen(ctx context.Context, clientID string, seen bool) error {
	return nil
}

func testMetrics() []*domain.PollutionMetric {
	return []*domain.PollutionMetric{
		{
			ID:                  "m-1",
			LocationName:        "Mumbai Harbour",
			LocationLat:         18.9388,
			LocationLng:         72.8356,
			PlasticDensityIndex: 78,
			WaterClarityLevel:   domain.ClarityPoor,
			PollutionTrend:      domain.TrendRising,
		},
		{
			ID:                  "m-2",
			LocationName:        "Ganga at Varanasi",
			LocationLat:         25.3176,
			LocationLng:         82.9739,
			PlasticDensityIndex: 22,
			WaterClarityLevel:   domain.ClarityClear,
			PollutionTrend:      domain.TrendDeclining,
		},
	}
}

func TestGetMetrics_DecoratesDisplayAttributes(t *testing.T) {
	repo := &fakeMetricRepo{metrics: testMetrics()}
	uc := NewMetricUseCase(repo, newFakeCacheRepo(), zap.NewNop(), time.Minute)

	resp, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Metrics, 2)

	critical := resp.Metrics[0]
	assert.Equal(t, classify.BandCritical, critical.Display.RiskBand)
	assert.Equal(t, classify.ColorCritical, critical.Display.MarkerColor)
	assert.Equal(t, "bg-red-100", critical.Display.ClarityBadge.Background)
	assert.Equal(t, "trending-up", critical.Display.TrendIcon)

	low := resp.Metrics[1]
	assert.Equal(t, classify.BandLow, low.Display.RiskBand)
	assert.Equal(t, classify.ColorLow, low.Display.MarkerColor)
	assert.Equal(t, "trending-down", low.Display.TrendIcon)
}

func TestGetMetrics_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeMetricRepo{metrics: testMetrics()}
	uc := NewMetricUseCase(repo, newFakeCacheRepo(), zap.NewNop(), time.Minute)

	first, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	second, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first.Total, second.Total)
}

func TestGetMetrics_UnknownEnumValuesRenderNeutral(t *testing.T) {
	repo := &fakeMetricRepo{metrics: []*domain.PollutionMetric{
		{ID: "m-3", PlasticDensityIndex: 40, WaterClarityLevel: "Murky", PollutionTrend: "Sideways"},
	}}
	uc := NewMetricUseCase(repo, nil, zap.NewNop(), time.Minute)

	resp, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Metrics, 1)

	assert.Equal(t, "bg-gray-100", resp.Metrics[0].Display.ClarityBadge.Background)
	assert.Equal(t, "minus", resp.Metrics[0].Display.TrendIcon)
}

func TestGetMetric_NotFound(t *testing.T) {
	repo := &fakeMetricRepo{metrics: testMetrics()}
	uc := NewMetricUseCase(repo, nil, zap.NewNop(), time.Minute)

	view, err := uc.GetMetric(context.Background(), "missing")
	assert.Nil(t, view)
	assert.Equal(t, errors.ErrMetricNotFound, err)
}

func TestGetMetric_Idempotent(t *testing.T) {
	repo := &fakeMetricRepo{metrics: testMetrics()}
	uc := NewMetricUseCase(repo, nil, zap.NewNop(), time.Minute)

	first, err := uc.GetMetric(context.Background(), "m-1")
	require.NoError(t, err)
	second, err := uc.GetMetric(context.Background(), "m-1")
	require.NoError(t, err)

	assert.Equal(t, first.Display, second.Display)
}
