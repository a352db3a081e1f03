package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние по дуге большого круга
// между двумя точками в километрах. Некорректные координаты (NaN)
// дают NaN - вызывающие проверяют координаты до отображения.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceKm возвращает расстояние, округлённое до целых километров
// для отображения
func DistanceKm(lat1, lng1, lat2, lng2 float64) int {
	return int(math.Round(HaversineDistance(lat1, lng1, lat2, lng2)))
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
