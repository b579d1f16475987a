package pricing

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"moveservice/internal/entities"
	"moveservice/internal/model/forest"
	"moveservice/internal/pkg/metrics"
	"moveservice/internal/pkg/timeband"
)

type Config struct {
	TrainingSize    int
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	Seed            int64
}

func (c Config) withDefaults() Config {
	if c.TrainingSize <= 0 {
		c.TrainingSize = 500
	}
	if c.Trees <= 0 {
		c.Trees = 100
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 10
	}
	if c.MinSamplesSplit <= 0 {
		c.MinSamplesSplit = 5
	}
	if c.MinSamplesLeaf <= 0 {
		c.MinSamplesLeaf = 2
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	return c
}

// Query — входные параметры оценки стоимости.
type Query struct {
	DistanceKm float64
	Category   entities.VehicleCategoryName
	Traffic    entities.TrafficLevel
	TimeOfDay  string
	IsPeak     bool
}

// Service — ценовой движок: обученный регрессор плюс нормализация входа и
// жесткий клэмп результата. Явный владелец состояния модели: обучение
// происходит один раз, лениво, под мьютексом; конкурентные первые вызовы
// видят либо полностью обученную модель, либо ждут её.
type Service struct {
	cfg Config

	mu    sync.Mutex
	model *forest.Forest
}

func New(cfg Config) *Service {
	return &Service{cfg: cfg.withDefaults()}
}

// Estimate возвращает оценку в целых денежных единицах. Результат всегда
// зажат в [MinPrice, MaxPrice] категории независимо от выхода модели — это
// главная гарантия, на которую могут опираться вызывающие. Состояние
// бронирований не читается и не мутируется: вызов безопасен сколь угодно
// часто.
func (s *Service) Estimate(ctx context.Context, q Query) (int64, error) {
	category, ok := entities.VehicleCategoryByName(q.Category)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, q.Category)
	}
	if q.DistanceKm < 0 || math.IsNaN(q.DistanceKm) || math.IsInf(q.DistanceKm, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDistance, q.DistanceKm)
	}

	model, err := s.trainedModel(ctx)
	if err != nil {
		return 0, err
	}

	bucket := timeband.Normalize(q.TimeOfDay)
	raw, err := model.Predict(encodeFeatures(q.DistanceKm, q.Category, q.Traffic, bucket, q.IsPeak))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	priceEstimatesTotal.WithLabelValues(q.Category.String()).Inc()
	return clamp(int64(math.Round(raw)), category.MinPrice, category.MaxPrice), nil
}

// EstimateSeries возвращает сырую оценку для каждой дистанции при прочих
// равных параметрах. Для отображения последовательность дополнительно
// прогоняется через NormalizeRunningMax; здесь трансформация не применяется.
func (s *Service) EstimateSeries(ctx context.Context, distances []float64, q Query) ([]int64, error) {
	if len(distances) == 0 {
		return nil, ErrEmptySeries
	}

	estimates := make([]int64, 0, len(distances))
	for _, distance := range distances {
		q.DistanceKm = distance
		price, err := s.Estimate(ctx, q)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, price)
	}
	return estimates, nil
}

// Warmup заранее обучает модель, чтобы первый живой запрос не платил за
// обучение. Повторные вызовы на обученной модели — no-op.
func (s *Service) Warmup(ctx context.Context) error {
	_, err := s.trainedModel(ctx)
	return err
}

// NormalizeRunningMax — презентационная трансформация сравнительной серии:
// каждый элемент становится максимумом себя и всех предыдущих. Компенсирует
// то, что регрессор не обязан быть монотонным по дистанции. Это не выход
// модели, и подменять им сырые оценки нельзя.
func NormalizeRunningMax(series []int64) []int64 {
	normalized := make([]int64, len(series))
	var runningMax int64
	for i, v := range series {
		if i == 0 || v > runningMax {
			runningMax = v
		}
		normalized[i] = runningMax
	}
	return normalized
}

// trainedModel лениво обучает модель и кэширует её на время жизни процесса.
// Неудачное обучение не кэшируется: следующий вызов попробует снова.
func (s *Service) trainedModel(_ context.Context) (*forest.Forest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model != nil {
		return s.model, nil
	}

	started := time.Now()
	rng := rand.New(rand.NewSource(s.cfg.Seed))
	features, labels := generateDataset(s.cfg.TrainingSize, rng)

	model := forest.New(forest.Params{
		Trees:           s.cfg.Trees,
		MaxDepth:        s.cfg.MaxDepth,
		MinSamplesSplit: s.cfg.MinSamplesSplit,
		MinSamplesLeaf:  s.cfg.MinSamplesLeaf,
		Seed:            s.cfg.Seed,
	})
	if err := model.Fit(features, labels); err != nil {
		return nil, fmt.Errorf("%w: fit: %v", ErrModelUnavailable, err)
	}
	metrics.PricingModelTrainSeconds.Observe(time.Since(started).Seconds())

	s.model = model
	return s.model, nil
}

func clamp(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
