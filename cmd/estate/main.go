package main

import (
	"context"
	"log/slog"
	"os"

	"estate/config"
	"estate/internal/delivery"
	"estate/internal/delivery/api"
	"estate/internal/infra/auth"
	"estate/internal/infra/auth/google"
	"estate/internal/infra/cache"
	"estate/internal/infra/geocoding"
	logs "estate/internal/infra/log"
	"estate/internal/infra/otp"
	"estate/internal/infra/persistence/postgres"
	"estate/internal/infra/pubsub"
	"estate/internal/infra/qrcode"
	"estate/internal/infra/sms"
	"estate/internal/infra/storage"
	"estate/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		api.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAdminRepository,
			postgres.NewListingRepository,
			postgres.NewMarkRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			cache.NewQueryCache,
			otp.NewRedisStore,
			sms.NewSender,
			geocoding.NewGeocoder,
			storage.NewImageStore,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressResolver,
			impl.NewListingLocator,
			impl.NewNearbyService,
			impl.NewIdentityAssigner,
			impl.NewListingService,
			impl.NewAccountService,
			impl.NewMarkService,
			impl.NewDeviceService,
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
