package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/csvterm/internal/core"
)

// ResponseFormatter builds the Markdown used by help and by transports that
// render entries as rich text.
type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("⚙️ **%s**\n", title)
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("**%s**  ›  `%s`\n", label, value)
}

func (f *ResponseFormatter) Usage(command string) string {
	return fmt.Sprintf("**Usage**: `%s`\n", command)
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("› %s\n", item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Code(text string) string {
	return fmt.Sprintf("```\n%s\n```\n", text)
}

// Entry renders one dispatch result the way the history view shows it.
// Markdown output is embedded as is; everything else goes in a code block.
func (f *ResponseFormatter) Entry(r core.Result) string {
	out := f.Code(r.Output)
	if IsMarkdown(r) {
		out = r.Output
	}
	return f.Combine(
		f.Label("Command", r.Input),
		"**Output**:",
		out,
	)
}

// IsMarkdown reports whether r came from help, the only command that
// answers in Markdown.
func IsMarkdown(r core.Result) bool {
	_, prefix, _ := strings.Cut(r.Label, " ")
	return prefix == "help" && r.Output != TextUnregistered && r.Output != ""
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}
