package domain

import "time"

// Категории загрязнения для пользовательских отчётов
const (
	CategoryPlastic  = "Plastic"
	CategoryChemical = "Chemical"
	CategoryOil      = "Oil"
	CategorySewage   = "Sewage"
)

// Статусы отчёта. Переходы New -> Verified -> Resolved выполняются
// только внешним workflow проверки, никогда при отправке.
const (
	StatusNew      = "New"
	StatusVerified = "Verified"
	StatusResolved = "Resolved"
)

// ReportCategories - допустимые категории в фиксированном порядке
var ReportCategories = []string{
	CategoryPlastic,
	CategoryChemical,
	CategoryOil,
	CategorySewage,
}

// PollutionReport - наблюдение, отправленное жителем
type PollutionReport struct {
	ID                  string    `json:"id" db:"id"`
	LocationLat         float64   `json:"location_lat" db:"location_lat"`
	LocationLng         float64   `json:"location_lng" db:"location_lng"`
	Category            string    `json:"category" db:"category"`
	Description         string    `json:"description" db:"description"`
	PlasticDensityIndex int       `json:"plastic_density_index" db:"plastic_density_index"`
	WaterClarityLevel   string    `json:"water_clarity_level" db:"water_clarity_level"`
	ReportedBy          string    `json:"reported_by" db:"reported_by"`
	Status              string    `json:"status" db:"status"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}

// ValidCategory проверяет, что категория входит в допустимый набор
func ValidCategory(category string) bool {
	for _, c := range ReportCategories {
		if c == category {
			return true
		}
	}
	return false
}
