package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/csvterm/internal/config"
	"github.com/sandevgo/csvterm/internal/transport/tui"
	"github.com/sandevgo/csvterm/pkg/log"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Full-screen terminal with command history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// the screen belongs to the UI, so logs go to a file
		runtimePath := config.GetRuntimePath()
		if err := os.MkdirAll(runtimePath, 0755); err != nil {
			return err
		}
		ctx, flushLog, err := log.NewFileLogger(ctx, debug || config.IsDebug(), config.AppConfig{RuntimePath: runtimePath}.GetLogPath())
		if err != nil {
			return err
		}
		defer flushLog()

		_, session, err := newSession(ctx)
		if err != nil {
			return err
		}
		return tui.NewTUI(session).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
