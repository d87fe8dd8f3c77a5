package main

import (
	"encoding/json"
	"strings"

	"github.com/sandevgo/csvterm/internal/transport/cli"
	"github.com/spf13/cobra"
)

var execJSON bool

var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Dispatch a single command and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		_, session, err := newSession(ctx)
		if err != nil {
			return err
		}

		res := session.Dispatch(ctx, strings.Join(args, " "))
		if execJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			return enc.Encode(res)
		}
		cli.PrintEntry(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	execCmd.Flags().BoolVar(&execJSON, "json", false, "print the result as JSON")
	// flags end at the command name so "-71.4" reaches weather as an argument
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}
