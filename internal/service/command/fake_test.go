package command

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sandevgo/csvterm/internal/core"
)

var fourStars = [][]string{
	{"0", "Sol", "0", "0"},
	{"1", "", "282.43485", "0.00449"},
	{"2", "", "43.04329", "0.00285"},
	{"3", "", "277.11358", "0.02422"},
}

const fourStarsJSON = `[["0","Sol","0","0"],["1","","282.43485","0.00449"],["2","","43.04329","0.00285"],["3","","277.11358","0.02422"]]`

// fakeDataService mimics the backend: a set of known files and the last
// loaded one.
type fakeDataService struct {
	mu      sync.Mutex
	files   map[string][][]string
	loaded  [][]string
	calls   int
	loadErr error

	getResult     core.ResultCode
	loadOverride  core.ResultCode
	weatherResult core.WeatherResponse
	weatherErr    error
	statsRaw      json.RawMessage
}

func newFakeDataService() *fakeDataService {
	return &fakeDataService{
		files: map[string][][]string{
			"data/stars/four_stars.csv": fourStars,
		},
		weatherResult: core.WeatherResponse{Result: core.ResultSuccess, Temperature: "53.6"},
	}
}

func (f *fakeDataService) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeDataService) LoadCSV(ctx context.Context, path string) (core.LoadResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if f.loadErr != nil {
		return core.LoadResponse{}, f.loadErr
	}
	if f.loadOverride != "" {
		return core.LoadResponse{Result: f.loadOverride}, nil
	}
	rows, ok := f.files[path]
	if !ok {
		return core.LoadResponse{Result: core.ResultErrorDatasource}, nil
	}
	f.loaded = rows
	return core.LoadResponse{Result: core.ResultSuccess}, nil
}

func (f *fakeDataService) GetCSV(ctx context.Context) (core.CSVResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if f.getResult != "" {
		return core.CSVResponse{Result: f.getResult}, nil
	}
	return core.CSVResponse{Result: core.ResultSuccess, Data: f.loaded}, nil
}

func (f *fakeDataService) Stats(ctx context.Context) (core.StatsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if f.statsRaw != nil {
		return core.StatsResponse{Result: core.ResultSuccess, Data: f.statsRaw}, nil
	}
	if f.loaded == nil {
		return core.StatsResponse{Result: "error_no_data"}, nil
	}
	data, _ := json.Marshal([]int{len(f.loaded), len(f.loaded[0])})
	return core.StatsResponse{Result: core.ResultSuccess, Data: data}, nil
}

func (f *fakeDataService) Weather(ctx context.Context, lat, lon string) (core.WeatherResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if f.weatherErr != nil {
		return core.WeatherResponse{}, f.weatherErr
	}
	return f.weatherResult, nil
}
