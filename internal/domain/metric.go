package domain

import "time"

// Уровни прозрачности воды
const (
	ClarityClear    = "Clear"
	ClarityModerate = "Moderate"
	ClarityPoor     = "Poor"
)

// Тренды загрязнения
const (
	TrendRising    = "Rising"
	TrendStable    = "Stable"
	TrendDeclining = "Declining"
)

// PollutionMetric - последний снимок показателей мониторинговой точки.
// Записи создаются и обновляются только внешним пайплайном загрузки данных,
// сервис их читает и вычисляет отображаемые атрибуты.
type PollutionMetric struct {
	ID                  string    `json:"id" db:"id"`
	LocationLat         float64   `json:"location_lat" db:"location_lat"`
	LocationLng         float64   `json:"location_lng" db:"location_lng"`
	LocationName        string    `json:"location_name" db:"location_name"`
	PlasticDensityIndex int       `json:"plastic_density_index" db:"plastic_density_index"`
	WaterClarityLevel   string    `json:"water_clarity_level" db:"water_clarity_level"`
	MicroplasticCount   int       `json:"microplastic_count" db:"microplastic_count"`
	PollutionTrend      string    `json:"pollution_trend" db:"pollution_trend"`
	LastUpdated         time.Time `json:"last_updated" db:"last_updated"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}
