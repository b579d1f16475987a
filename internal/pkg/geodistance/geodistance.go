package geodistance

import (
	"math"
	"strconv"
	"strings"

	"moveservice/internal/entities"
)

const (
	// Средний радиус Земли в километрах.
	earthRadiusKm = 6371.0

	// DefaultDistanceKm возвращается, когда ни явная дистанция, ни координаты
	// не заданы. Отсутствие геоданных трактуется как минимальный локальный
	// переезд, а не как ошибка.
	DefaultDistanceKm = 1.00
)

// Resolve сводит сырой ввод к одной неотрицательной дистанции в километрах.
// Приоритет: явное значение → гаверсинус по двум координатам → дефолт.
// Нечитаемый текст считается отсутствующим значением и проваливается на
// следующее правило.
func Resolve(explicit string, origin, dest *entities.Coordinate) float64 {
	if km, ok := parseDistance(explicit); ok {
		return km
	}

	if origin != nil && dest != nil {
		return Haversine(*origin, *dest)
	}

	return DefaultDistanceKm
}

// Haversine вычисляет дистанцию большого круга между двумя точками,
// округленную до двух знаков.
func Haversine(a, b entities.Coordinate) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lng - a.Lng)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return round2(earthRadiusKm * c)
}

func parseDistance(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	km, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return 0, false
	}
	return km, true
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
