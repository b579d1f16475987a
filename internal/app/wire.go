//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	booking_accept_post "moveservice/internal/handlers/rest/booking_accept_post"
	booking_deliver_post "moveservice/internal/handlers/rest/booking_deliver_post"
	booking_get "moveservice/internal/handlers/rest/booking_get"
	booking_payment_post "moveservice/internal/handlers/rest/booking_payment_post"
	booking_post "moveservice/internal/handlers/rest/booking_post"
	booking_start_post "moveservice/internal/handlers/rest/booking_start_post"
	price_compare_post "moveservice/internal/handlers/rest/price_compare_post"
	price_estimate_post "moveservice/internal/handlers/rest/price_estimate_post"
	rating_post "moveservice/internal/handlers/rest/rating_post"
	rating_summary_get "moveservice/internal/handlers/rest/rating_summary_get"
	"moveservice/internal/handlers/tasks/model_warmup"
	"moveservice/internal/pkg/config"

	actorRepo "moveservice/internal/repository/actor"
	bookingRepo "moveservice/internal/repository/booking"
	ratingRepo "moveservice/internal/repository/rating"
	bookingService "moveservice/internal/service/booking"
	pricingService "moveservice/internal/service/pricing"
	ratingService "moveservice/internal/service/rating"

	"moveservice/pkg/background"
	"moveservice/pkg/logger"
	"moveservice/pkg/querier"
	"moveservice/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	WarmupInterval time.Duration
)

type Application struct {
	ServiceBooking    ServiceBooking
	ServicePricing    ServicePricing
	ServiceRating     ServiceRating
	BackgroundWorkers *background.Worker
}

type ServiceBooking interface {
	booking_post.Service
	booking_get.Service
	booking_accept_post.Service
	booking_start_post.Service
	booking_deliver_post.Service
	booking_payment_post.Service
}

type ServicePricing interface {
	price_estimate_post.Service
	price_compare_post.Service
}

type ServiceRating interface {
	rating_post.Service
	rating_summary_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideWarmupInterval,

		provideBookingRepository,
		provideActorRepository,
		provideRatingRepository,

		provideServicePricing,
		provideServiceBooking,
		provideServiceRating,

		provideModelWarmupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceBooking), new(*bookingService.Booking)),
		wire.Bind(new(ServicePricing), new(*pricingService.Service)),
		wire.Bind(new(ServiceRating), new(*ratingService.Rating)),

		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.ActorProvider), new(*actorRepo.Repository)),
		wire.Bind(new(bookingService.PricingService), new(*pricingService.Service)),
		wire.Bind(new(ratingService.Repository), new(*ratingRepo.Repository)),
		wire.Bind(new(ratingService.BookingProvider), new(*bookingRepo.Repository)),

		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(model_warmup.Service), new(*pricingService.Service)),
	)
	return &Application{}, nil
}

type PaymentWorkerApp struct {
	BookingService *bookingService.Booking
}

// InitializePaymentWorkerApp для Kafka воркера (cmd/worker-payment-confirmed)
func InitializePaymentWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*PaymentWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideBookingRepository,
		provideActorRepository,

		provideServicePricing,
		provideServiceBooking,

		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.ActorProvider), new(*actorRepo.Repository)),
		wire.Bind(new(bookingService.PricingService), new(*pricingService.Service)),

		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),

		wire.Struct(new(PaymentWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideBookingRepository(querier *querier.Querier) *bookingRepo.Repository {
	return bookingRepo.New(querier)
}

func provideActorRepository(querier *querier.Querier) *actorRepo.Repository {
	return actorRepo.New(querier)
}

func provideRatingRepository(querier *querier.Querier) *ratingRepo.Repository {
	return ratingRepo.New(querier)
}

func provideServicePricing(cfg *config.Config) *pricingService.Service {
	return pricingService.New(pricingService.Config{
		TrainingSize:    cfg.Pricing.TrainingSize,
		Trees:           cfg.Pricing.Trees,
		MaxDepth:        cfg.Pricing.MaxDepth,
		MinSamplesSplit: cfg.Pricing.MinSamplesSplit,
		MinSamplesLeaf:  cfg.Pricing.MinSamplesLeaf,
		Seed:            cfg.Pricing.Seed,
	})
}

func provideServiceBooking(
	repository bookingService.Repository,
	actors bookingService.ActorProvider,
	pricing bookingService.PricingService,
	txManager bookingService.TxManager,
) *bookingService.Booking {
	return bookingService.New(
		repository,
		actors,
		pricing,
		txManager,
	)
}

func provideServiceRating(
	repository ratingService.Repository,
	bookings ratingService.BookingProvider,
) *ratingService.Rating {
	return ratingService.New(repository, bookings)
}

func provideWarmupInterval(cfg *config.Config) WarmupInterval {
	return WarmupInterval(cfg.Tasks.ModelWarmupInterval)
}

func provideModelWarmupTask(
	log logger.Logger,
	pricingService model_warmup.Service,
	interval WarmupInterval,
) *model_warmup.ModelWarmup {
	return model_warmup.NewModelWarmup(log, pricingService, time.Duration(interval))
}

func provideTaskList(
	modelWarmupTask *model_warmup.ModelWarmup,
) []background.Task {
	return []background.Task{
		modelWarmupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
