package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
)

const (
	fieldUsername = iota
	fieldEmail
	fieldCount
)

// profileSubmitMsg carries the profile form to the dashboard.
type profileSubmitMsg struct {
	username string
	email    string
}

// ProfilePageModel is the username and email form.
type ProfilePageModel struct {
	inputs [fieldCount]textinput.Model
	focus  int

	styles Styles
}

func NewProfilePageModel() ProfilePageModel {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 32
	username.Width = 32
	username.Prompt = "Username: "
	username.Cursor.SetMode(cursor.CursorStatic)

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64
	email.Width = 40
	email.Prompt = "Email:    "
	email.Cursor.SetMode(cursor.CursorStatic)

	m := ProfilePageModel{
		inputs: [fieldCount]textinput.Model{username, email},
		styles: DefaultStyles(),
	}
	m.inputs[fieldUsername].Focus()

	return m
}

// SetProfile - fills the form from a stored profile.
func (m ProfilePageModel) SetProfile(profile *entity.Profile) ProfilePageModel {
	m.inputs[fieldUsername].SetValue(profile.Username)
	m.inputs[fieldEmail].SetValue(profile.Email)

	return m
}

func (m ProfilePageModel) SetUsername(username string) ProfilePageModel {
	m.inputs[fieldUsername].SetValue(username)

	return m
}

func (m ProfilePageModel) Update(msg tea.Msg) (ProfilePageModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return m.focusField((m.focus + 1) % fieldCount), nil
		case "shift+tab", "up":
			return m.focusField((m.focus + fieldCount - 1) % fieldCount), nil
		case "enter":
			if m.focus < fieldCount-1 {
				return m.focusField(m.focus + 1), nil
			}

			return m, m.submit
		case "ctrl+s":
			return m, m.submit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	return m, cmd
}

func (m ProfilePageModel) focusField(field int) ProfilePageModel {
	m.inputs[m.focus].Blur()
	m.focus = field
	m.inputs[m.focus].Focus()

	return m
}

func (m ProfilePageModel) submit() tea.Msg {
	return profileSubmitMsg{
		username: m.inputs[fieldUsername].Value(),
		email:    m.inputs[fieldEmail].Value(),
	}
}

func (m ProfilePageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Profile"))
	sb.WriteString("\n")

	for _, input := range m.inputs {
		sb.WriteString(input.View())
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Help.Render("tab next field • enter/ctrl+s save • esc menu"))

	return sb.String()
}
