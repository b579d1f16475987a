//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=price_compare_post_test
package price_compare_post

import (
	"context"

	"moveservice/internal/service/pricing"
	"moveservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	EstimateSeries(ctx context.Context, distances []float64, q pricing.Query) ([]int64, error)
}
