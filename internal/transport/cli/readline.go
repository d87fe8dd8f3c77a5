package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/internal/service/command"
	"github.com/sandevgo/csvterm/internal/service/ui"
	"github.com/sandevgo/csvterm/pkg/conv"
	"github.com/sandevgo/csvterm/pkg/log"
)

type lineReader interface {
	Readline() (string, error)
}

type ReadLine struct {
	dispatcher core.CmdDispatcher
	rl         *readline.Instance
	in         lineReader
	out        io.Writer
}

// NewReadLine builds the interactive prompt. Input history is kept in
// memory only.
func NewReadLine(dispatcher core.CmdDispatcher) (*ReadLine, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	return &ReadLine{
		dispatcher: dispatcher,
		rl:         rl,
		in:         rl,
		out:        rl.Stdout(),
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Strs("commands", r.dispatcher.Commands()).Msg("REPL started. Type 'exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if strings.TrimSpace(line) == "exit" {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Dispatch sequentially so labels match the order on screen
		res := r.dispatcher.Dispatch(ctx, line)
		PrintEntry(r.out, res)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// PrintEntry writes one history entry: the command, then its output.
func PrintEntry(w io.Writer, res core.Result) {
	out := res.Output
	if command.IsMarkdown(res) {
		out = "\n" + conv.MarkdownToText(out)
	}

	fmt.Fprintf(w, "%s %s %s\n", ui.DescStyle.Render("["+res.Label+"]"), ui.FieldStyle.Render("Command:"), res.Input)
	fmt.Fprintf(w, "%s %s\n", ui.FieldStyle.Render("Output:"), ui.RenderOutput(out))
}

