package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sandevgo/csvterm/internal/config"
	"github.com/sandevgo/csvterm/internal/transport/cli"
	"github.com/sandevgo/csvterm/internal/transport/telegram"
	"github.com/sandevgo/csvterm/pkg/log"
	"github.com/sandevgo/csvterm/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the REPL and any enabled transports",
	Long:  `Starts the interactive prompt and, when ENABLE_TELEGRAM is set, the Telegram bot. Each transport gets its own session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		services, err := newServices(ctx, stop)
		if err != nil {
			return err
		}

		srv.StartServices(ctx, stop, services)
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("csvterm has been shut down")
		return nil
	},
}

func newServices(ctx context.Context, stop context.CancelFunc) ([]srv.Service, error) {
	var services []srv.Service

	appCfg, session, err := newSession(ctx)
	if err != nil {
		return nil, err
	}

	if appCfg.IsTelegramSelected() {
		// separate session: labels count per conversation
		_, tgSession, err := newSession(ctx)
		if err != nil {
			return nil, err
		}
		bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), tgSession)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if appCfg.IsCLISelected() {
		repl, err := cli.NewReadLine(session)
		if err != nil {
			return nil, err
		}
		services = append(services, srv.NewForeground(repl, stop))
	}

	if len(services) == 0 {
		log.FromCtx(ctx).Warn().Msg("no transports enabled; set ENABLE_CLI or ENABLE_TELEGRAM")
	}
	return services, nil
}

func init() {
	rootCmd.AddCommand(startCmd)
}
