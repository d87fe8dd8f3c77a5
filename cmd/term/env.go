package main

import (
	"fmt"

	"github.com/sandevgo/csvterm/internal/config"
	"github.com/sandevgo/csvterm/internal/service/installer"
	"github.com/sandevgo/csvterm/pkg/env"
	"github.com/sandevgo/csvterm/pkg/log"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the effective configuration as .env lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		cfg, err := config.ParseAppConfig()
		if err != nil {
			return err
		}

		out, err := env.MarshalEnv(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		if !cfg.IsTelegramSelected() {
			return nil
		}
		tgCfg, err := config.ParseTelegramConfig()
		if err != nil {
			return fmt.Errorf("failed to parse Telegram config: %w", err)
		}
		out, err = env.MarshalEnv(tgCfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var setupCmd = &cobra.Command{
	Use:          "setup",
	Short:        "Write a .env for csvterm interactively",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		runtimePath := config.GetRuntimePath()
		if _, err := installer.RunWizard(runtimePath); err != nil {
			return err
		}

		envPath := config.AppConfig{RuntimePath: runtimePath}.GetEnvPath()
		log.FromCtx(ctx).Info().Str("path", envPath).Msg("configuration written. Run 'term start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(setupCmd)
}
