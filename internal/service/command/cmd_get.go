package command

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/pkg/log"
)

// GetCommand loads a CSV on the data service and returns its rows as JSON.
type GetCommand struct {
	ds core.DataService
}

func NewGetCommand(ds core.DataService) *GetCommand {
	return &GetCommand{ds: ds}
}

func (c *GetCommand) Name() string {
	return "get"
}

func (c *GetCommand) Description() string {
	return "Load a CSV file and print its rows: get <filepath>"
}

func (c *GetCommand) Handle(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return TextGetArguments
	}
	logger := log.FromCtx(ctx)

	loaded, err := c.ds.LoadCSV(ctx, args[0])
	if err != nil {
		logger.Warn().Err(err).Str("path", args[0]).Msg("loadcsv failed")
		return TextUnexpected
	}

	switch loaded.Result {
	case core.ResultSuccess:
		return c.fetch(ctx)
	case core.ResultErrorDatasource:
		return TextGetDatasource
	case core.ResultErrorBadRequest:
		return TextGetArguments
	case core.ResultErrorBadJSON:
		return TextGetBadJSON
	default:
		logger.Warn().Str("result", string(loaded.Result)).Msg("unknown loadcsv result")
		return TextUnexpected
	}
}

func (c *GetCommand) fetch(ctx context.Context) string {
	rows, err := c.ds.GetCSV(ctx)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("getcsv failed")
		return TextUnexpected
	}
	if rows.Result != core.ResultSuccess {
		return TextGetBadJSON
	}

	out, err := encodeRows(rows.Data)
	if err != nil {
		return TextGetBadJSON
	}
	return out
}

// encodeRows matches JSON.stringify: compact and without HTML escaping.
func encodeRows(rows [][]string) (string, error) {
	if rows == nil {
		rows = [][]string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rows); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
