package command

import (
	"context"

	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/pkg/log"
)

// WeatherCommand asks the data service for the current temperature at a
// coordinate. Latitude and longitude are passed through unparsed.
type WeatherCommand struct {
	ds core.DataService
}

func NewWeatherCommand(ds core.DataService) *WeatherCommand {
	return &WeatherCommand{ds: ds}
}

func (c *WeatherCommand) Name() string {
	return "weather"
}

func (c *WeatherCommand) Description() string {
	return "Current temperature at a coordinate: weather <lat> <lon>"
}

func (c *WeatherCommand) Handle(ctx context.Context, args []string) string {
	if args == nil {
		return TextWeatherUndefined
	}
	if len(args) != 2 {
		return TextWeatherBadRequest
	}
	logger := log.FromCtx(ctx)

	resp, err := c.ds.Weather(ctx, args[0], args[1])
	if err != nil {
		logger.Warn().Err(err).Strs("args", args).Msg("weather failed")
		return TextWeatherDatasource
	}

	switch resp.Result {
	case core.ResultSuccess:
		if resp.Temperature == "" {
			logger.Warn().Msg("weather success without temperature")
			return TextUnexpected
		}
		return resp.Temperature.String()
	case core.ResultErrorBadRequest:
		return TextWeatherBadRequest
	case core.ResultErrorDatasource:
		return TextWeatherDatasource
	default:
		logger.Warn().Str("result", string(resp.Result)).Msg("unknown weather result")
		return TextUnexpected
	}
}
