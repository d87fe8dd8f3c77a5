package command

import (
	"context"
	"fmt"
)

type describer interface {
	Description() string
}

// HelpCommand lists what is registered on its session.
type HelpCommand struct {
	registry  *Registry
	formatter *ResponseFormatter
}

func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{
		registry:  registry,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Handle(ctx context.Context, args []string) string {
	if len(args) == 1 {
		return c.describe(args[0])
	}

	names := c.registry.Names()
	items := make([]string, 0, len(names))
	for _, name := range names {
		h, _ := c.registry.Lookup(name)
		if d, ok := h.(describer); ok && d.Description() != "" {
			items = append(items, fmt.Sprintf("**%s** %s", name, d.Description()))
			continue
		}
		items = append(items, fmt.Sprintf("**%s**", name))
	}

	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(items),
	)
}

func (c *HelpCommand) describe(name string) string {
	h, ok := c.registry.Lookup(name)
	if !ok {
		return TextUnregistered
	}
	if d, ok := h.(describer); ok && d.Description() != "" {
		return c.formatter.Combine(
			c.formatter.Label("Command", name),
			c.formatter.Usage(d.Description()),
		)
	}
	return c.formatter.Label("Command", name)
}
