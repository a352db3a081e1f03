package domain

// Stream names
const (
	StreamReportsSubmitted = "stream:reports:submitted"
)

// ReportSubmittedEvent - событие о новом отчёте для воркера уведомлений
type ReportSubmittedEvent struct {
	ReportID            string  `json:"report_id"`
	LocationLat         float64 `json:"location_lat"`
	LocationLng         float64 `json:"location_lng"`
	Category            string  `json:"category"`
	PlasticDensityIndex int     `json:"plastic_density_index"`
	ReportedBy          string  `json:"reported_by"`
}
