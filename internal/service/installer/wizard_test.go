package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func typeText(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}
var down = tea.KeyMsg{Type: tea.KeyDown}

func TestWizard_TerminalOnly(t *testing.T) {
	dir := t.TempDir()
	m := initialModel(dir)

	// default URL, first channel; telegram steps are skipped and the save
	// step runs on its init message
	m = send(m, enter, enter)
	assert.Equal(t, 4, m.current)

	m = send(m, nextMsg{})
	assert.True(t, m.finished())
	assert.Equal(t, "Configuration complete!\n", m.View())
	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "DATA_SERVICE_URL=http://localhost:1738\nENABLE_CLI=true\nENABLE_TELEGRAM=false\n", string(data))
}

func TestWizard_WithTelegram(t *testing.T) {
	dir := t.TempDir()
	m := initialModel(dir)

	m = send(m,
		typeText("http://csv.internal:9000"), enter,
		down, enter,
		typeText("123:ABC"), enter,
		typeText("not-a-number"), enter,
	)
	// owner id is rejected until numeric
	assert.Equal(t, 3, m.current)
	assert.Contains(t, m.View(), "the owner id is a number")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlU}, typeText("42"), enter, nextMsg{})

	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "DATA_SERVICE_URL=http://csv.internal:9000\nENABLE_CLI=true\nENABLE_TELEGRAM=true\nTELEGRAM_OWNER_ID=42\nTELEGRAM_TOKEN=123:ABC\n", string(data))
}

func TestWizard_InvalidURLStays(t *testing.T) {
	m := send(initialModel(t.TempDir()), typeText("localhost:1738"), enter)
	assert.Equal(t, 0, m.current)
	assert.Contains(t, m.View(), "not an http(s) URL")
}

func TestWizard_CtrlCQuits(t *testing.T) {
	m := send(initialModel(t.TempDir()), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitting)
	assert.Equal(t, "Setup cancelled.\n", m.View())
}

func TestSaveEnv_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	state := NewInstallState(dir)
	state.EnvVars["DATA_SERVICE_URL"] = "http://localhost:1738"

	require.NoError(t, SaveEnv(state))
	assert.Error(t, SaveEnv(state))
}

func TestWizard_SaveFailureStays(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("X=1\n"), 0600))

	m := send(initialModel(dir), enter, enter, nextMsg{})
	assert.False(t, m.finished())
	assert.Contains(t, m.View(), ".env file already exists")

	m = send(m, nextMsg{})
	assert.False(t, m.finished())
}
