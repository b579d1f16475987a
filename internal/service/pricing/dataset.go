package pricing

import (
	"math/rand"

	"moveservice/internal/entities"
	"moveservice/internal/pkg/timeband"
)

// Множители ценовой формулы, на которой размечается синтетическая выборка.
const (
	peakMultiplier    = 1.2
	nightDiscount     = 0.9
	longHaulDiscount  = 0.95
	longHaulKm        = 15.0
	noiseLow          = 0.9
	noiseSpread       = 0.2
	maxSampleDistance = 30.0
)

var trafficMultipliers = map[entities.TrafficLevel]float64{
	entities.TrafficLow:    1.0,
	entities.TrafficMedium: 1.1,
	entities.TrafficHigh:   1.3,
}

// generateDataset размечает n синтетических перевозок. Исторические
// бронирования в обучение не попадают. Шум [0.9, 1.1] не дает модели
// выродиться в точный пересказ формулы.
func generateDataset(n int, rng *rand.Rand) (features [][]float64, labels []float64) {
	categories := entities.VehicleCategories()
	traffics := []entities.TrafficLevel{entities.TrafficLow, entities.TrafficMedium, entities.TrafficHigh}
	buckets := timeband.Buckets()

	features = make([][]float64, 0, n)
	labels = make([]float64, 0, n)

	for i := 0; i < n; i++ {
		category := categories[rng.Intn(len(categories))]
		traffic := traffics[rng.Intn(len(traffics))]
		bucket := buckets[rng.Intn(len(buckets))]
		distance := 0.5 + rng.Float64()*maxSampleDistance

		// Пиковыми бывают только утренние и вечерние поездки.
		isPeak := (bucket == timeband.Morning || bucket == timeband.Evening) && rng.Intn(2) == 0

		features = append(features, encodeFeatures(distance, category.Name, traffic, bucket, isPeak))
		labels = append(labels, labelPrice(distance, category, traffic, bucket, isPeak, rng))
	}

	return features, labels
}

func labelPrice(
	distanceKm float64,
	category entities.VehicleCategory,
	traffic entities.TrafficLevel,
	bucket timeband.Bucket,
	isPeak bool,
	rng *rand.Rand,
) float64 {
	price := distanceKm * category.PerKmRate
	if price < float64(category.MinPrice) {
		price = float64(category.MinPrice)
	}

	price *= trafficMultipliers[traffic]
	if isPeak {
		price *= peakMultiplier
	}
	if bucket == timeband.Night {
		price *= nightDiscount
	}
	if distanceKm > longHaulKm {
		price *= longHaulDiscount
	}

	price *= noiseLow + rng.Float64()*noiseSpread

	if price > float64(category.MaxPrice) {
		price = float64(category.MaxPrice)
	}
	return price
}
