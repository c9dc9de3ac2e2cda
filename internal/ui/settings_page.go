package ui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
)

type settingsSubmitMsg struct {
	language      string
	notifications bool
}

// SettingsPageModel picks the interface language and toggles notifications.
// The row after the languages is the notifications toggle.
type SettingsPageModel struct {
	cursor        int
	selected      string
	notifications bool

	styles Styles
}

func NewSettingsPageModel() SettingsPageModel {
	return SettingsPageModel{
		selected: entity.LanguageEnglish,
		styles:   DefaultStyles(),
	}
}

// SetProfile - shows the stored settings of profile. The cursor stays on the
// toggle row so it can be flipped again.
func (m SettingsPageModel) SetProfile(profile *entity.Profile) SettingsPageModel {
	if i := slices.Index(entity.Languages, profile.Language); i >= 0 {
		if !m.onToggle() {
			m.cursor = i
		}
		m.selected = profile.Language
	}

	m.notifications = profile.Notifications

	return m
}

func (m SettingsPageModel) rows() int {
	return len(entity.Languages) + 1
}

func (m SettingsPageModel) onToggle() bool {
	return m.cursor == len(entity.Languages)
}

func (m SettingsPageModel) Update(msg tea.Msg) (SettingsPageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.cursor = (m.cursor + m.rows() - 1) % m.rows()
	case "down", "j":
		m.cursor = (m.cursor + 1) % m.rows()
	case "enter", " ":
		submit := settingsSubmitMsg{language: m.selected, notifications: m.notifications}

		if m.onToggle() {
			submit.notifications = !m.notifications
		} else {
			submit.language = entity.Languages[m.cursor]
		}

		return m, func() tea.Msg { return submit }
	}

	return m, nil
}

func (m SettingsPageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Settings"))
	sb.WriteString("\nLanguage\n")

	for i, language := range entity.Languages {
		mark := "( )"
		if language == m.selected {
			mark = "(•)"
		}

		sb.WriteString(m.pointer(i) + mark + " " + language + "\n")
	}

	toggle := "[ ]"
	if m.notifications {
		toggle = "[x]"
	}

	sb.WriteString("\n" + m.pointer(len(entity.Languages)) + toggle + " Enable Notifications\n")
	sb.WriteString(m.styles.Help.Render("up/down choose • enter save • esc menu"))

	return sb.String()
}

func (m SettingsPageModel) pointer(row int) string {
	if row == m.cursor {
		return "> "
	}

	return "  "
}
