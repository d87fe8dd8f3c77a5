package srv

import "context"

type cleanupService struct {
	cleanup func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup != nil {
		return c.cleanup()
	}
	return nil
}

func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}

// foregroundService stops the application once the wrapped service's Start
// returns, e.g. when the user types "exit" in the REPL.
type foregroundService struct {
	Service
	stop context.CancelFunc
}

func (f *foregroundService) Start(ctx context.Context) error {
	defer f.stop()
	return f.Service.Start(ctx)
}

func NewForeground(s Service, stop context.CancelFunc) Service {
	return &foregroundService{Service: s, stop: stop}
}
