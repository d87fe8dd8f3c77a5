package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/internal/service/ui"
)

const inputHeight = 3

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	entryStyle  = lipgloss.NewStyle().PaddingLeft(1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type resultMsg core.Result

// model is the terminal view: an input box over a scrolling history.
type model struct {
	ctx        context.Context
	dispatcher core.CmdDispatcher

	input   textinput.Model
	history viewport.Model
	entries []core.Result
	pending int
	ready   bool
	width   int
}

func newModel(ctx context.Context, dispatcher core.CmdDispatcher) model {
	ti := textinput.New()
	ti.Placeholder = "Enter command here!"
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Focus()

	history := viewport.New(80, 20)
	history.KeyMap = historyKeys()

	return model{
		ctx:        ctx,
		dispatcher: dispatcher,
		input:      ti,
		history:    history,
		width:      80,
	}
}

// historyKeys scrolls the history without letter keys, which belong to the
// input box.
func historyKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.history.Width = msg.Width
		m.history.Height = max(msg.Height-inputHeight-1, 1)
		m.input.Width = max(msg.Width-4, 10)
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "exit" {
				return m, tea.Quit
			}
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m.pending++
			return m, m.submit(line)
		}

	case resultMsg:
		m.pending--
		m.entries = append(m.entries, core.Result(msg))
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.history, cmd = m.history.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit assigns the label now and waits for the handler off the UI loop.
func (m model) submit(line string) tea.Cmd {
	f := m.dispatcher.DispatchAsync(m.ctx, line)
	return func() tea.Msg {
		return resultMsg(f.Result())
	}
}

func (m *model) refresh() {
	var sb strings.Builder
	for _, e := range m.entries {
		sb.WriteString(renderEntry(e, m.width))
		sb.WriteString("\n")
	}
	m.history.SetContent(sb.String())
	m.history.GotoBottom()
}

func renderEntry(e core.Result, width int) string {
	body := ui.DescStyle.Render(e.Label) + "\n" +
		ui.FieldStyle.Render("Command: ") + e.Input + "\n" +
		ui.FieldStyle.Render("Output: ") + ui.RenderOutput(e.Output)
	return entryStyle.Width(max(width-2, 10)).Render(body)
}

func (m model) View() string {
	status := "ready"
	if m.pending > 0 {
		status = "running…"
	}
	footer := footerStyle.Render(strings.Join(m.dispatcher.Commands(), " · ") + "  |  " + status + "  |  esc to quit")

	return headerStyle.Render("csvterm") + "\n" +
		m.history.View() + "\n" +
		m.input.View() + "\n" +
		footer
}
