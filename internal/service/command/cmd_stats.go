package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/pkg/log"
)

// StatsCommand reports the row and column counts of the most recently
// loaded CSV.
type StatsCommand struct {
	ds core.DataService
}

func NewStatsCommand(ds core.DataService) *StatsCommand {
	return &StatsCommand{ds: ds}
}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Show row and column counts of the loaded CSV"
}

func (c *StatsCommand) Handle(ctx context.Context, args []string) string {
	if len(args) != 0 {
		return TextStatsArguments
	}

	resp, err := c.ds.Stats(ctx)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("stats failed")
		return TextStatsFail
	}
	if resp.Result != core.ResultSuccess {
		return TextStatsFail
	}

	out, ok := formatCounts(resp.Data)
	if !ok {
		log.FromCtx(ctx).Warn().Bytes("data", resp.Data).Msg("unreadable stats payload")
		return TextStatsFail
	}
	return out
}

func formatCounts(data json.RawMessage) (string, bool) {
	var pair []json.Number
	if err := json.Unmarshal(data, &pair); err == nil && len(pair) == 2 {
		return fmt.Sprintf("rows = %s, cols = %s", pair[0], pair[1]), true
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil && text != "" {
		return text, true
	}
	return "", false
}
