package core

import (
	"context"
	"encoding/json"
	"errors"
)

// ResultCode is the discriminator the data service puts in every response.
type ResultCode string

const (
	ResultSuccess         ResultCode = "success"
	ResultErrorDatasource ResultCode = "error_datasource"
	ResultErrorBadRequest ResultCode = "error_bad_request"
	ResultErrorBadJSON    ResultCode = "error_bad_json"
)

var (
	ErrBadResponse        = errors.New("data service returned an unreadable response")
	ErrServiceUnavailable = errors.New("data service unavailable")
)

type LoadResponse struct {
	Result ResultCode `json:"result"`
}

type CSVResponse struct {
	Result ResultCode `json:"result"`
	Data   [][]string `json:"data,omitempty"`
}

// StatsResponse keeps Data raw: the service reports either a [rows, cols]
// pair or a preformatted string.
type StatsResponse struct {
	Result ResultCode      `json:"result"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type WeatherResponse struct {
	Result      ResultCode  `json:"result"`
	Temperature json.Number `json:"Temperature,omitempty"`
}

// DataService is the backend the built-in commands talk to. Stats reports
// on whatever LoadCSV most recently loaded; that ordering is the service's
// concern.
type DataService interface {
	LoadCSV(ctx context.Context, path string) (LoadResponse, error)
	GetCSV(ctx context.Context) (CSVResponse, error)
	Stats(ctx context.Context) (StatsResponse, error)
	Weather(ctx context.Context, lat, lon string) (WeatherResponse, error)
}
