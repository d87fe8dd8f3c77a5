package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

// NewContextWithLogger installs a console logger writing to out and returns
// a context carrying it. Stdout is reserved for command output (and for the
// MCP protocol), so callers normally pass os.Stderr or a file. A nil out
// means os.Stderr.
func NewContextWithLogger(ctx context.Context, debug bool, out io.Writer) (context.Context, func()) {
	if out == nil {
		out = os.Stderr
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return ""
	}

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Ring buffer of 1000 entries, polled every 5ms. Closing the diode must
	// not close out, which is usually os.Stderr.
	wr := diode.NewWriter(writerOnly{out}, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Fprintf(os.Stderr, "Logger Dropped %d messages\n", missed)
	})

	output := zerolog.ConsoleWriter{
		Out:        wr,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		CallerWithSkipFrameCount(2).
		Logger()

	log.Logger = logger

	return log.With().Logger().WithContext(ctx), func() {
		wr.Close()
	}
}

// NewFileLogger is NewContextWithLogger writing to a file. The TUI owns the
// whole terminal, so its logs go to disk.
func NewFileLogger(ctx context.Context, debug bool, path string) (context.Context, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return ctx, func() {}, fmt.Errorf("failed to open log file: %w", err)
	}
	ctx, flush := NewContextWithLogger(ctx, debug, f)
	return ctx, func() {
		flush()
		f.Close()
	}, nil
}

type writerOnly struct {
	io.Writer
}

func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}
