package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/csvterm/internal/transport/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the commands as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// stdout carries the protocol; logs stay on stderr
		ctx, flushLog := setupLogger(ctx)
		defer flushLog()

		_, session, err := newSession(ctx)
		if err != nil {
			return err
		}
		return mcp.NewServer(session, os.Stdin, os.Stdout).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
