package pricing

import (
	"moveservice/internal/entities"
	"moveservice/internal/pkg/timeband"
)

// Фиксированные числовые коды категориальных признаков. Одна и та же схема
// используется при генерации обучающей выборки и при предсказании; дрейф
// между ними исключен по построению.

var categoryCodes = map[entities.VehicleCategoryName]float64{
	entities.VehicleSmall:  0,
	entities.VehicleMedium: 1,
	entities.VehicleLarge:  2,
}

var trafficCodes = map[entities.TrafficLevel]float64{
	entities.TrafficLow:    0,
	entities.TrafficMedium: 1,
	entities.TrafficHigh:   2,
}

var bucketCodes = map[timeband.Bucket]float64{
	timeband.Morning:   0,
	timeband.Afternoon: 1,
	timeband.Evening:   2,
	timeband.Night:     3,
}

// encodeFeatures собирает вектор признаков модели:
// [дистанция, категория, трафик, бакет времени, пиковый флаг].
func encodeFeatures(
	distanceKm float64,
	category entities.VehicleCategoryName,
	traffic entities.TrafficLevel,
	bucket timeband.Bucket,
	isPeak bool,
) []float64 {
	peak := 0.0
	if isPeak {
		peak = 1.0
	}
	return []float64{
		distanceKm,
		categoryCodes[category],
		trafficCode(traffic),
		bucketCodes[bucket],
		peak,
	}
}

// trafficCode сводит неизвестный уровень к medium, а не к ошибке:
// путь живой оценки должен оставаться доступным.
func trafficCode(traffic entities.TrafficLevel) float64 {
	code, ok := trafficCodes[traffic]
	if !ok {
		return trafficCodes[entities.DefaultTrafficLevel]
	}
	return code
}
