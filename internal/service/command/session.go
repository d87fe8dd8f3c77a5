package command

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/pkg/log"
)

var _ core.CmdDispatcher = (*Session)(nil)

// Session owns a registry and the sequence counter used for result labels.
// Every transport creates its own Session, so labels start at 0 per session.
type Session struct {
	registry *Registry
	next     atomic.Int64
}

func NewSession() *Session {
	return &Session{
		registry: NewRegistry(),
	}
}

func (s *Session) Register(name string, h core.Handler) {
	s.registry.Register(name, h)
}

func (s *Session) RegisterCommands(commands ...core.Command) {
	for _, cmd := range commands {
		s.registry.Register(cmd.Name(), cmd)
	}
}

func (s *Session) Registry() *Registry {
	return s.registry
}

func (s *Session) Commands() []string {
	return s.registry.Names()
}

// Describe returns the description of a registered Command, or "" for plain
// handlers and unknown names.
func (s *Session) Describe(name string) string {
	h, ok := s.registry.Lookup(name)
	if !ok {
		return ""
	}
	if d, ok := h.(describer); ok {
		return d.Description()
	}
	return ""
}

// Dispatch runs one input line to completion.
func (s *Session) Dispatch(ctx context.Context, input string) core.Result {
	prefix, args, label := s.prepare(input)
	return s.run(ctx, input, prefix, args, label)
}

// DispatchAsync assigns the label immediately, in call order, and runs the
// handler on its own goroutine. Labels can therefore settle out of order.
func (s *Session) DispatchAsync(ctx context.Context, input string) *core.Future {
	prefix, args, label := s.prepare(input)

	f := core.NewFuture()
	go func() {
		f.Settle(s.run(ctx, input, prefix, args, label))
	}()
	return f
}

func (s *Session) prepare(input string) (prefix string, args []string, label string) {
	args = []string{}
	if parts := strings.Fields(input); len(parts) > 0 {
		prefix = parts[0]
		args = parts[1:]
	}

	index := s.next.Add(1) - 1
	return prefix, args, fmt.Sprintf("%d %s", index, prefix)
}

func (s *Session) run(ctx context.Context, input, prefix string, args []string, label string) core.Result {
	logger := log.FromCtx(ctx)
	start := time.Now()

	res := core.Result{Input: input, Label: label}

	h, ok := s.registry.Lookup(prefix)
	if !ok {
		logger.Debug().Str("label", label).Str("prefix", prefix).Msg("unregistered command")
		res.Output = TextUnregistered
		return res
	}

	res.Output = invoke(ctx, h, args, label)

	logger.Debug().
		Str("label", label).
		Strs("args", args).
		Dur("elapsed", time.Since(start)).
		Msg("command dispatched")
	return res
}

func invoke(ctx context.Context, h core.Handler, args []string, label string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.FromCtx(ctx).Error().Str("label", label).Interface("panic", r).Msg("command handler panicked")
			out = TextCommandFailed
		}
	}()
	return h.Handle(ctx, args)
}
