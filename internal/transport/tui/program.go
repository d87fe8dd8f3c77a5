package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/pkg/log"
)

type TUI struct {
	dispatcher core.CmdDispatcher
	program    *tea.Program
}

func NewTUI(dispatcher core.CmdDispatcher) *TUI {
	return &TUI{dispatcher: dispatcher}
}

// Start blocks until the user quits.
func (t *TUI) Start(ctx context.Context) error {
	t.program = tea.NewProgram(newModel(ctx, t.dispatcher), tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := t.program.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	if m, ok := final.(model); ok {
		log.FromCtx(ctx).Info().Int("entries", len(m.entries)).Msg("tui closed")
	}
	return nil
}

func (t *TUI) Shutdown(ctx context.Context) error {
	if t.program != nil {
		t.program.Quit()
	}
	return nil
}
