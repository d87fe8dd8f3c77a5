package srv

import (
	"context"

	"github.com/sandevgo/csvterm/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices runs every service on its own goroutine. A service failing to
// start cancels the whole set through stop.
func StartServices(ctx context.Context, stop context.CancelFunc, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Msgf("%T failed", service)
				stop()
			}
		}(service)
	}
}

func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	// shut down in reverse start order so transports go before their backends
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
