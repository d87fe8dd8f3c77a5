package installer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultDataServiceURL = "http://localhost:1738"

// DataServiceStep collects the base URL of the CSV/weather backend
type DataServiceStep struct {
	input textinput.Model
	err   error
}

func NewDataServiceStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = defaultDataServiceURL

	return &DataServiceStep{input: ti}
}

func (s *DataServiceStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *DataServiceStep) Update(msg tea.Msg, state *InstallState) (bool, tea.Cmd) {
	if !isEnter(msg) {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return false, cmd
	}

	value := strings.TrimSpace(s.input.Value())
	if value == "" {
		value = defaultDataServiceURL
	}
	if s.err = validateURL(value); s.err != nil {
		return false, nil
	}
	state.EnvVars["DATA_SERVICE_URL"] = value
	return true, nil
}

func (s *DataServiceStep) View(state *InstallState) string {
	view := "Data service URL:\n\n" + s.input.View() + "\n\n"
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + "(press enter to confirm, empty for default)\n"
}

func isEnter(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	return ok && key.Type == tea.KeyEnter
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an http(s) URL", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return nil
}
