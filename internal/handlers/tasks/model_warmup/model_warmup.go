package model_warmup

import (
	"context"
	"time"

	"moveservice/pkg/logger"
)

type Service interface {
	Warmup(ctx context.Context) error
}

// ModelWarmup держит ценовую модель обученной: первый проход обучает её
// до приема трафика, периодические проходы переобучают после неудач.
type ModelWarmup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewModelWarmup(log logger.Logger, service Service, interval time.Duration) *ModelWarmup {
	return &ModelWarmup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (m *ModelWarmup) TTL() time.Duration {
	return m.interval
}

func (m *ModelWarmup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.service.Warmup(ctxWithTimeout)
	if err != nil {
		m.log.With(
			logger.NewField("error", err),
		).Warn("pricing model warmup failed")
	}

	return err
}

func (m *ModelWarmup) Info() string {
	return "pricing model warmup"
}
