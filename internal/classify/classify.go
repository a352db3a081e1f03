package classify

import "github.com/aquasentinel/internal/domain"

// Band - полоса риска, вычисляемая из индекса плотности пластика
type Band string

const (
	BandLow      Band = "Low"
	BandModerate Band = "Moderate"
	BandHigh     Band = "High"
	BandCritical Band = "Critical"
)

// Цвета маркеров по полосам риска
const (
	ColorCritical = "#ef4444"
	ColorHigh     = "#f59e0b"
	ColorModerate = "#eab308"
	ColorLow      = "#10b981"
	ColorNeutral  = "#9ca3af"
)

// Badge - стиль бейджа для отображения прозрачности воды
type Badge struct {
	Text       string `json:"text"`
	Background string `json:"background"`
}

// RiskStyle - стиль отображения уровня риска прогноза
type RiskStyle struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// BandForDensity возвращает полосу риска по индексу плотности.
// Пороги проверяются по убыванию, граничные значения относятся
// к более высокой полосе: ровно 70 - Critical, ровно 50 - High.
func BandForDensity(density int) Band {
	switch {
	case density >= 70:
		return BandCritical
	case density >= 50:
		return BandHigh
	case density >= 30:
		return BandModerate
	default:
		return BandLow
	}
}

// ColorForDensity возвращает цвет маркера по индексу плотности
func ColorForDensity(density int) string {
	switch BandForDensity(density) {
	case BandCritical:
		return ColorCritical
	case BandHigh:
		return ColorHigh
	case BandModerate:
		return ColorModerate
	default:
		return ColorLow
	}
}

// clarityBadges - фиксированная таблица стилей прозрачности воды
var clarityBadges = map[string]Badge{
	domain.ClarityClear:    {Text: "text-green-600", Background: "bg-green-100"},
	domain.ClarityModerate: {Text: "text-yellow-600", Background: "bg-yellow-100"},
	domain.ClarityPoor:     {Text: "text-red-600", Background: "bg-red-100"},
}

// neutralBadge используется для нераспознанных значений
var neutralBadge = Badge{Text: "text-gray-600", Background: "bg-gray-100"}

// ClarityBadge возвращает стиль бейджа для уровня прозрачности.
// Нераспознанные значения отображаются нейтрально, без ошибки.
func ClarityBadge(clarity string) Badge {
	if badge, ok := clarityBadges[clarity]; ok {
		return badge
	}
	return neutralBadge
}

// trendIcons - фиксированная таблица иконок тренда
var trendIcons = map[string]string{
	domain.TrendRising:    "trending-up",
	domain.TrendDeclining: "trending-down",
	domain.TrendStable:    "minus",
}

// TrendIcon возвращает имя иконки для тренда загрязнения.
// Нераспознанные значения получают нейтральную иконку.
func TrendIcon(trend string) string {
	if icon, ok := trendIcons[trend]; ok {
		return icon
	}
	return "minus"
}

// riskStyles - фиксированная таблица стилей уровней риска прогнозов
var riskStyles = map[string]RiskStyle{
	domain.RiskHigh:     {Color: ColorCritical, Icon: "alert-circle"},
	domain.RiskModerate: {Color: ColorHigh, Icon: "trending-up"},
	domain.RiskLow:      {Color: ColorLow, Icon: "check-circle"},
}

// PredictionRiskStyle возвращает стиль отображения уровня риска прогноза
func PredictionRiskStyle(level string) RiskStyle {
	if style, ok := riskStyles[level]; ok {
		return style
	}
	return RiskStyle{Color: ColorNeutral, Icon: "help-circle"}
}
