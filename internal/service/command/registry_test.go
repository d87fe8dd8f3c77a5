package command

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sandevgo/csvterm/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(out string) core.Handler {
	return core.HandlerFunc(func(ctx context.Context, args []string) string {
		return out
	})
}

func TestRegistry_RegisterLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("sample", echo("sample function!"))

	require.True(t, r.Has("sample"))
	h, ok := r.Lookup("sample")
	require.True(t, ok)
	assert.Equal(t, "sample function!", h.Handle(context.Background(), nil))
}

func TestRegistry_LookupMissing(t *testing.T) {
	r := NewRegistry()
	h, ok := r.Lookup("missing")
	assert.False(t, ok)
	assert.Nil(t, h)
	assert.False(t, r.Has("missing"))
}

func TestRegistry_OverwriteKeepsLast(t *testing.T) {
	r := NewRegistry()
	r.Register("x", echo("h1"))
	r.Register("x", echo("h2"))

	h, ok := r.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "h2", h.Handle(context.Background(), nil))
	assert.Equal(t, []string{"x"}, r.Names())
}

func TestRegistry_IgnoresInvalid(t *testing.T) {
	r := NewRegistry()
	r.Register("", echo("blank"))
	r.Register("nil", nil)

	assert.Empty(t, r.Names())
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"weather", "get", "stats"} {
		r.Register(name, echo(name))
	}
	assert.Equal(t, []string{"get", "stats", "weather"}, r.Names())
}

func TestRegistry_RejectedRegistrationIsLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := log.Logger
	log.Logger = zerolog.New(buf).Level(zerolog.WarnLevel)
	t.Cleanup(func() { log.Logger = prev })

	r := NewRegistry()
	r.Register("", echo("x"))
	r.Register("nothing", nil)

	assert.Empty(t, r.Names())
	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "command registration ignored")
	assert.Contains(t, out, `"name":"nothing"`)
}
