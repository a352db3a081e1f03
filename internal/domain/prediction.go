package domain

import "time"

// Уровни риска прогнозов
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
)

// PredictionFactors - факторы, учтённые внешней прогнозной задачей
type PredictionFactors struct {
	Weather         *string `json:"weather,omitempty"`
	WasteHotspots   *int    `json:"waste_hotspots,omitempty"`
	HistoricalTrend *string `json:"historical_trend,omitempty"`
}

// AIPrediction - готовый прогноз риска. Вычисляется внешней задачей,
// сервис только формирует отображаемые атрибуты по уровню риска.
type AIPrediction struct {
	ID              string            `json:"id" db:"id"`
	LocationLat     float64           `json:"location_lat" db:"location_lat"`
	LocationLng     float64           `json:"location_lng" db:"location_lng"`
	RiskLevel       string            `json:"risk_level" db:"risk_level"`
	PredictionText  string            `json:"prediction_text" db:"prediction_text"`
	ConfidenceScore float64           `json:"confidence_score" db:"confidence_score"`
	Factors         PredictionFactors `json:"factors" db:"-"`
	ValidUntil      time.Time         `json:"valid_until" db:"valid_until"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
}
