package command

import (
	"github.com/sandevgo/csvterm/internal/core"
)

func NewCommands(ds core.DataService) []core.Command {
	return []core.Command{
		NewGetCommand(ds),
		NewStatsCommand(ds),
		NewWeatherCommand(ds),
	}
}

// NewDefaultSession returns a session with the built-in commands and help
// already registered.
func NewDefaultSession(ds core.DataService) *Session {
	s := NewSession()
	s.RegisterCommands(NewCommands(ds)...)
	s.RegisterCommands(NewHelpCommand(s.Registry()))
	return s
}
