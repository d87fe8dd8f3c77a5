package installer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func telegramSelected(state *InstallState) bool {
	return state.EnvVars["ENABLE_TELEGRAM"] == "true"
}

// TelegramTokenStep collects the Telegram bot token
type TelegramTokenStep struct {
	input textinput.Model
}

func NewTelegramTokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "123456789:ABCDEF..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &TelegramTokenStep{input: ti}
}

func (s *TelegramTokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TelegramTokenStep) Skip(state *InstallState) bool {
	return !telegramSelected(state)
}

func (s *TelegramTokenStep) Update(msg tea.Msg, state *InstallState) (bool, tea.Cmd) {
	if !isEnter(msg) {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return false, cmd
	}

	token := strings.TrimSpace(s.input.Value())
	if token == "" {
		return false, nil
	}
	state.EnvVars["TELEGRAM_TOKEN"] = token
	return true, nil
}

func (s *TelegramTokenStep) View(state *InstallState) string {
	return "Enter your Telegram Bot Token:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}

// TelegramOwnerStep collects the only Telegram user allowed to run commands
type TelegramOwnerStep struct {
	input   textinput.Model
	invalid bool
}

func NewTelegramOwnerStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 40
	ti.Placeholder = "123456789"

	return &TelegramOwnerStep{input: ti}
}

func (s *TelegramOwnerStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TelegramOwnerStep) Skip(state *InstallState) bool {
	return !telegramSelected(state)
}

func (s *TelegramOwnerStep) Update(msg tea.Msg, state *InstallState) (bool, tea.Cmd) {
	if !isEnter(msg) {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return false, cmd
	}

	value := strings.TrimSpace(s.input.Value())
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		s.invalid = true
		return false, nil
	}
	state.EnvVars["TELEGRAM_OWNER_ID"] = value
	return true, nil
}

func (s *TelegramOwnerStep) View(state *InstallState) string {
	view := "Enter your Telegram User ID (Owner):\n\n" + s.input.View() + "\n\n"
	if s.invalid {
		view += errorStyle.Render("the owner id is a number") + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}
