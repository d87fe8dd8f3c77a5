package installer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

var ErrSetupCancelled = errors.New("setup cancelled")

// Step is one screen of the setup wizard. Update reports done once the step
// has written what it collected into the state.
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState) (done bool, cmd tea.Cmd)
	View(state *InstallState) string
}

// skipper is implemented by steps that only apply to some configurations.
type skipper interface {
	Skip(state *InstallState) bool
}

func defaultSteps() []Step {
	return []Step{
		NewDataServiceStep(),
		NewChannelStep(),
		NewTelegramTokenStep(),
		NewTelegramOwnerStep(),
		NewSaveEnvStep(),
	}
}

type nextMsg struct{}

type model struct {
	steps    []Step
	current  int
	state    *InstallState
	quitting bool
}

func initialModel(runtimePath string) model {
	return model{
		steps: defaultSteps(),
		state: NewInstallState(runtimePath),
	}
}

func (m model) finished() bool {
	return m.current >= len(m.steps)
}

func (m model) Init() tea.Cmd {
	if m.finished() {
		return tea.Quit
	}
	return m.steps[m.current].Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if m.finished() {
		return m, tea.Quit
	}

	done, cmd := m.steps[m.current].Update(msg, m.state)
	if !done {
		return m, cmd
	}
	return m.advance()
}

// advance moves past the current step and any step that does not apply.
func (m model) advance() (model, tea.Cmd) {
	m.current++
	for !m.finished() {
		s, ok := m.steps[m.current].(skipper)
		if !ok || !s.Skip(m.state) {
			break
		}
		m.current++
	}
	return m, m.Init()
}

func (m model) View() string {
	switch {
	case m.quitting:
		return "Setup cancelled.\n"
	case m.finished():
		return "Configuration complete!\n"
	}
	header := titleStyle.Render(fmt.Sprintf("csvterm setup (%d/%d)", m.current+1, len(m.steps)))
	return header + "\n\n" + m.steps[m.current].View(m.state)
}

// RunWizard collects the configuration interactively and writes it to
// <runtimePath>/.env.
func RunWizard(runtimePath string) (*InstallState, error) {
	final, err := tea.NewProgram(initialModel(runtimePath), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	m := final.(model)
	if m.quitting || !m.finished() {
		return nil, ErrSetupCancelled
	}
	return m.state, nil
}
