package installer

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// SaveEnvStep writes the collected configuration once its Init message
// arrives. A failure stays on screen until the user quits.
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState) (bool, tea.Cmd) {
	if _, ok := msg.(nextMsg); !ok || s.err != nil {
		return s.saved, nil
	}

	if s.err = SaveEnv(state); s.err != nil {
		return false, nil
	}
	s.saved = true
	return true, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

// SaveEnv writes state to <runtime>/.env, refusing to overwrite an
// existing file.
func SaveEnv(state *InstallState) error {
	if err := os.MkdirAll(state.RuntimePath, 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := filepath.Join(state.RuntimePath, ".env")
	if _, err := os.Stat(envPath); err == nil {
		return fmt.Errorf(".env file already exists at %s", envPath)
	}

	if err := os.WriteFile(envPath, []byte(state.Render()), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", envPath, err)
	}
	return nil
}
