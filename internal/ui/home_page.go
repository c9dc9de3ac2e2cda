package ui

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
)

type HomePageModel struct {
	styles Styles
}

func NewHomePageModel() HomePageModel {
	return HomePageModel{styles: DefaultStyles()}
}

func (m HomePageModel) View(profile *entity.Profile) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Dashboard"))
	sb.WriteString("\n")

	if profile == nil {
		sb.WriteString("Welcome! Set up your profile to get started.\n")
	} else {
		sb.WriteString("Welcome back, " + profile.Username + ".\n")
		sb.WriteString("Language: " + profile.Language + "\n")

		if profile.IsAdmin() {
			sb.WriteString("You have administrator access.\n")
		}
	}

	sb.WriteString(m.styles.Help.Render("up/down choose • enter open • q quit"))

	return sb.String()
}
