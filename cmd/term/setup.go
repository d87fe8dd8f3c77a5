package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/csvterm/internal/config"
	"github.com/sandevgo/csvterm/internal/providers/dataservice"
	"github.com/sandevgo/csvterm/internal/service/command"
	"github.com/sandevgo/csvterm/pkg/log"
)

// newSession loads configuration and builds a session with the built-in
// commands bound to the configured data service.
func newSession(ctx context.Context) (*config.AppConfig, *command.Session, error) {
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, nil, err
	}

	appCfg, err := config.ParseAppConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse App config: %w", err)
	}

	client, err := dataservice.NewClient(appCfg.GetDataServiceURL(), appCfg.GetRequestTimeout())
	if err != nil {
		return nil, nil, err
	}

	if appCfg.WaitForService {
		if err := client.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("data service at %s not reachable: %w", appCfg.GetDataServiceURL(), err)
		}
	}

	log.FromCtx(ctx).Debug().Str("url", appCfg.GetDataServiceURL()).Msg("data service configured")
	return appCfg, command.NewDefaultSession(client), nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
