package command

import "strings"

// User-facing output. Success and failure share the same string channel, so
// these are the only way to tell them apart.
const (
	TextUnregistered  = "ERROR: Provide a registered function"
	TextCommandFailed = "ERROR: Command failed"
	TextUnexpected    = "ERROR: Unexpected response from data service"

	TextGetArguments  = "ERROR: Provide 1 argument"
	TextGetDatasource = "ERROR: Provide a valid filepath"
	TextGetBadJSON    = "ERROR: Exception thrown loading data"

	TextStatsArguments = "ERROR: Provide 0 arguments"
	TextStatsFail      = "ERROR: Data not loaded"

	TextWeatherBadRequest = "ERROR: Provide 2 arguments (lat and lon)"
	TextWeatherDatasource = "ERROR connecting to National Weather Service API"
	TextWeatherUndefined  = "args undefined!"
)

// IsError reports whether out is one of the failure texts above.
func IsError(out string) bool {
	return strings.HasPrefix(out, "ERROR") || out == TextWeatherUndefined
}
