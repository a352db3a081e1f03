package dto

import "github.com/aquasentinel/internal/domain"

// SubmitReportRequest - запрос на отправку отчёта о загрязнении.
// Координаты и категорию проверяет use case, чтобы вернуть доменные
// коды ошибок (INVALID_LOCATION, INVALID_CATEGORY); здесь у них
// намеренно нет validate-тегов. Плотность ограничивается диапазоном
// [0,100], а не отклоняется.
type SubmitReportRequest struct {
	LocationLat         float64 `json:"location_lat"`
	LocationLng         float64 `json:"location_lng"`
	Category            string  `json:"category" validate:"required"`
	Description         string  `json:"description" validate:"omitempty,max=2000"`
	PlasticDensityIndex int     `json:"plastic_density_index"`
	WaterClarityLevel   string  `json:"water_clarity_level" validate:"required,oneof=Clear Moderate Poor"`
	ReportedBy          string  `json:"reported_by" validate:"omitempty,max=120"`
	Status              string  `json:"status" validate:"omitempty"`
}

// ChatRequest - запрос к ассистенту. Пустое сообщение допустимо
// и получает ответ-заглушку со сводкой возможностей.
type ChatRequest struct {
	Message    string               `json:"message" validate:"max=4000"`
	Transcript []domain.ChatMessage `json:"transcript" validate:"omitempty,max=200,dive"`
}

// OrganizationsRequest - параметры выборки организаций.
// Невалидные координаты - мягкий сбой: use case молча подставляет
// точку по умолчанию, поэтому диапазон здесь не проверяется.
type OrganizationsRequest struct {
	Type string   `json:"type" validate:"omitempty,oneof=All Authority Corporation NGO"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
}

// TutorialRequest - запрос на сохранение флага просмотра туториала
type TutorialRequest struct {
	ClientID string `json:"client_id" validate:"required,max=120"`
	Seen     bool   `json:"seen"`
}
