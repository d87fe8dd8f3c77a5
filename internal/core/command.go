package core

import "context"

// Handler turns a command's argument list into the text shown to the user.
// Failures are reported through the returned string, never through a panic.
// A nil args slice means the arguments were not supplied at all, which is
// distinct from an empty list.
type Handler interface {
	Handle(ctx context.Context, args []string) string
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx context.Context, args []string) string

func (f HandlerFunc) Handle(ctx context.Context, args []string) string {
	return f(ctx, args)
}

// Command is a Handler that knows its own registration name.
type Command interface {
	Handler
	Name() string
	Description() string
}

// Result is one dispatched line: what was typed, what came back and the
// "<index> <prefix>" label identifying it within the session.
type Result struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Label  string `json:"label"`
}

type CmdDispatcher interface {
	Register(name string, h Handler)
	Dispatch(ctx context.Context, input string) Result
	DispatchAsync(ctx context.Context, input string) *Future
	Commands() []string
}
