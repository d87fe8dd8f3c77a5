package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/internal/service/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStarService(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/loadcsv", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("filepath") != "data/stars/four_stars.csv" {
			w.Write([]byte(`{"result":"error_datasource"}`))
			return
		}
		w.Write([]byte(`{"result":"success"}`))
	})
	mux.HandleFunc("/getcsv", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","data":[["0","Sol","0","0"],["1","","282.43485","0.00449"],["2","","43.04329","0.00285"],["3","","277.11358","0.02422"]]}`))
	})
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") != "41.8268" || r.URL.Query().Get("lon") != "-71.4128" {
			w.Write([]byte(`{"result":"error_bad_request"}`))
			return
		}
		w.Write([]byte(`{"result":"success","Temperature":53.6}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func runExec(t *testing.T, args ...string) core.Result {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(append([]string{"exec", "--json"}, args...))
	require.NoError(t, rootCmd.Execute())

	var res core.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	return res
}

func TestExec_Get(t *testing.T) {
	srv := newStarService(t)
	t.Setenv("TERM_RUNTIME_PATH", t.TempDir())
	t.Setenv("DATA_SERVICE_URL", srv.URL)

	res := runExec(t, "get", "data/stars/four_stars.csv")
	assert.Equal(t, `[["0","Sol","0","0"],["1","","282.43485","0.00449"],["2","","43.04329","0.00285"],["3","","277.11358","0.02422"]]`, res.Output)
	assert.Equal(t, "0 get", res.Label)
	assert.Equal(t, "get data/stars/four_stars.csv", res.Input)

	res = runExec(t, "get", "not/valid/filepath")
	assert.Equal(t, command.TextGetDatasource, res.Output)
}

func TestExec_Unregistered(t *testing.T) {
	t.Setenv("TERM_RUNTIME_PATH", t.TempDir())
	t.Setenv("DATA_SERVICE_URL", "http://127.0.0.1:1")

	res := runExec(t, "invalid")
	assert.Equal(t, command.TextUnregistered, res.Output)
}

func TestExec_WeatherNegativeLongitude(t *testing.T) {
	srv := newStarService(t)
	t.Setenv("TERM_RUNTIME_PATH", t.TempDir())
	t.Setenv("DATA_SERVICE_URL", srv.URL)

	res := runExec(t, "weather", "41.8268", "-71.4128")
	assert.Equal(t, "53.6", res.Output)
	assert.Equal(t, "0 weather", res.Label)
	assert.Equal(t, "weather 41.8268 -71.4128", res.Input)
}
