package command

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sandevgo/csvterm/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Unregistered(t *testing.T) {
	ds := newFakeDataService()
	s := NewDefaultSession(ds)

	for _, input := range []string{"invalid", "invalid some args", "mockGet data/stars/ten-star.csv"} {
		res := s.Dispatch(context.Background(), input)
		assert.Equal(t, TextUnregistered, res.Output, input)
		assert.Equal(t, input, res.Input)
	}
	assert.Zero(t, ds.Calls())
}

func TestSession_EmptyInput(t *testing.T) {
	s := NewSession()

	res := s.Dispatch(context.Background(), "   ")
	assert.Equal(t, TextUnregistered, res.Output)
	assert.Equal(t, "0 ", res.Label)
	assert.Equal(t, "   ", res.Input)
}

func TestSession_LabelsInCallOrder(t *testing.T) {
	s := NewDefaultSession(newFakeDataService())
	ctx := context.Background()

	labels := []string{
		s.Dispatch(ctx, "get").Label,
		s.Dispatch(ctx, "stats").Label,
		s.Dispatch(ctx, "weather").Label,
	}
	assert.Equal(t, []string{"0 get", "1 stats", "2 weather"}, labels)
}

func TestSession_LabelsArePerSession(t *testing.T) {
	ctx := context.Background()
	a, b := NewSession(), NewSession()

	a.Dispatch(ctx, "one")
	assert.Equal(t, "1 two", a.Dispatch(ctx, "two").Label)
	assert.Equal(t, "0 two", b.Dispatch(ctx, "two").Label)
}

func TestSession_RegisterNewCommand(t *testing.T) {
	s := NewSession()
	var got []string
	s.Register("mockFunc", core.HandlerFunc(func(ctx context.Context, args []string) string {
		got = args
		return `[["a","b","c"],["d","e","f"]]`
	}))

	require.True(t, s.Registry().Has("mockFunc"))
	res := s.Dispatch(context.Background(), "mockFunc data/stars/ten-star.csv")
	assert.Equal(t, `[["a","b","c"],["d","e","f"]]`, res.Output)
	assert.Equal(t, []string{"data/stars/ten-star.csv"}, got)
	assert.Equal(t, "0 mockFunc", res.Label)
}

func TestSession_OverwriteInvokesLatest(t *testing.T) {
	s := NewSession()
	var firstCalled bool
	s.Register("x", core.HandlerFunc(func(ctx context.Context, args []string) string {
		firstCalled = true
		return "h1"
	}))
	s.Register("x", echo("h2"))

	assert.Equal(t, "h2", s.Dispatch(context.Background(), "x").Output)
	assert.False(t, firstCalled)
}

func TestSession_ArgsNeverNil(t *testing.T) {
	s := NewSession()
	var args []string
	s.Register("probe", core.HandlerFunc(func(ctx context.Context, a []string) string {
		args = a
		return ""
	}))

	s.Dispatch(context.Background(), "probe")
	require.NotNil(t, args)
	assert.Empty(t, args)
}

func TestSession_CollapsesWhitespace(t *testing.T) {
	s := NewSession()
	var args []string
	s.Register("probe", core.HandlerFunc(func(ctx context.Context, a []string) string {
		args = a
		return ""
	}))

	res := s.Dispatch(context.Background(), "  probe\t41.8   -71.4 ")
	assert.Equal(t, []string{"41.8", "-71.4"}, args)
	assert.Equal(t, "0 probe", res.Label)
}

func TestSession_PanicBecomesOutput(t *testing.T) {
	s := NewSession()
	s.Register("boom", core.HandlerFunc(func(ctx context.Context, args []string) string {
		panic("handler bug")
	}))

	res := s.Dispatch(context.Background(), "boom")
	assert.Equal(t, TextCommandFailed, res.Output)
	assert.Equal(t, "0 boom", res.Label)
}

func TestSession_GetIdempotent(t *testing.T) {
	s := NewDefaultSession(newFakeDataService())
	ctx := context.Background()

	first := s.Dispatch(ctx, "get data/stars/four_stars.csv")
	second := s.Dispatch(ctx, "get data/stars/four_stars.csv")

	assert.Equal(t, fourStarsJSON, first.Output)
	assert.Equal(t, first.Output, second.Output)
	assert.Equal(t, "0 get", first.Label)
	assert.Equal(t, "1 get", second.Label)
}

func TestSession_DispatchAsyncLabelsFollowCallOrder(t *testing.T) {
	s := NewSession()
	release := make(chan struct{})
	s.Register("slow", core.HandlerFunc(func(ctx context.Context, args []string) string {
		<-release
		return "slow done"
	}))
	s.Register("fast", echo("fast done"))

	ctx := context.Background()
	slow := s.DispatchAsync(ctx, "slow")
	fast := s.DispatchAsync(ctx, "fast")

	fastRes, err := fast.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1 fast", fastRes.Label)

	select {
	case <-slow.Done():
		t.Fatal("slow dispatch settled before release")
	default:
	}

	close(release)
	slowRes := slow.Result()
	assert.Equal(t, "0 slow", slowRes.Label)
	assert.Equal(t, "slow done", slowRes.Output)
}

func TestSession_AwaitDoesNotCancelHandler(t *testing.T) {
	s := NewSession()
	var finished atomic.Bool
	s.Register("wait", core.HandlerFunc(func(ctx context.Context, args []string) string {
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
		return "done"
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	f := s.DispatchAsync(context.Background(), "wait")
	_, err := f.Await(ctx)
	require.Error(t, err)

	assert.Equal(t, "done", f.Result().Output)
	assert.True(t, finished.Load())
}

func TestSession_Describe(t *testing.T) {
	s := NewDefaultSession(newFakeDataService())
	s.Register("plain", echo("x"))

	assert.Equal(t, "Show row and column counts of the loaded CSV", s.Describe("stats"))
	assert.Empty(t, s.Describe("plain"))
	assert.Empty(t, s.Describe("missing"))
	assert.Equal(t, []string{"get", "help", "plain", "stats", "weather"}, s.Commands())
}
