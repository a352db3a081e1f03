package dto

import (
	"github.com/aquasentinel/internal/classify"
	"github.com/aquasentinel/internal/domain"
)

// MetricDisplay - отображаемые атрибуты, вычисленные из показателей
type MetricDisplay struct {
	RiskBand     classify.Band  `json:"risk_band"`
	MarkerColor  string         `json:"marker_color"`
	ClarityBadge classify.Badge `json:"clarity_badge"`
	TrendIcon    string         `json:"trend_icon"`
}

// MetricView - показатели точки вместе с отображаемыми атрибутами
type MetricView struct {
	domain.PollutionMetric
	Display MetricDisplay `json:"display"`
}

// MetricsResponse - ответ со списком показателей
type MetricsResponse struct {
	Metrics []MetricView `json:"metrics"`
	Total   int          `json:"total"`
}

// PredictionView - прогноз вместе со стилем отображения уровня риска
type PredictionView struct {
	domain.AIPrediction
	Display classify.RiskStyle `json:"display"`
}

// PredictionsResponse - ответ со списком прогнозов
type PredictionsResponse struct {
	Predictions []PredictionView `json:"predictions"`
	Total       int              `json:"total"`
}

// OrganizationView - организация с округлённым расстоянием до пользователя
type OrganizationView struct {
	domain.Organization
	DistanceKm int `json:"distance_km"`
}

// OrganizationsResponse - ответ со списком организаций
type OrganizationsResponse struct {
	Organizations []OrganizationView `json:"organizations"`
	Total         int                `json:"total"`
}

// ChatResponse - ответ ассистента вместе с дополненным транскриптом
type ChatResponse struct {
	Reply      string               `json:"reply"`
	Transcript []domain.ChatMessage `json:"transcript"`
}

// GreetingResponse - первая реплика ассистента и быстрые действия
type GreetingResponse struct {
	Message      string   `json:"message"`
	QuickActions []string `json:"quick_actions"`
}

// TutorialResponse - состояние флага просмотра туториала
type TutorialResponse struct {
	Seen bool `json:"seen"`
}
