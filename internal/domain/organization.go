package domain

import "time"

// Типы организаций-респондентов
const (
	OrgTypeAuthority   = "Authority"
	OrgTypeCorporation = "Corporation"
	OrgTypeNGO         = "NGO"
)

// Organization - организация, реагирующая на инциденты загрязнения
type Organization struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Type        string    `json:"type" db:"type"`
	LocationLat float64   `json:"location_lat" db:"location_lat"`
	LocationLng float64   `json:"location_lng" db:"location_lng"`
	Address     string    `json:"address" db:"address"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	Email       *string   `json:"email,omitempty" db:"email"`
	Website     *string   `json:"website,omitempty" db:"website"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
