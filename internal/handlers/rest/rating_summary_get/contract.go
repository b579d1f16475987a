//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_summary_get_test
package rating_summary_get

import (
	"context"

	"moveservice/internal/entities"
	"moveservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Summary(ctx context.Context, actorID int64) (*entities.RatingSummary, error)
}
