package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
)

// Section is a sidebar entry.
type Section int

const (
	SectionHome Section = iota
	SectionProfile
	SectionSettings
	SectionGame
	sectionQuit
)

var sectionTitles = []string{"Home", "Profile", "Settings", "Tic Tac Toe", "Quit"}

func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionTitles) {
		return fmt.Sprintf("section(%d)", int(s))
	}

	return sectionTitles[s]
}

type profileService interface {
	Register(ctx context.Context, username, email string) (*entity.Profile, error)
	GetProfile(ctx context.Context, username string) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, username string, update entity.ProfileUpdate) (*entity.Profile, error)
	UpdateSettings(ctx context.Context, username string, settings entity.Settings) (*entity.Profile, error)
}

type profileLoadedMsg struct {
	profile *entity.Profile
	err     error
}

type profileSavedMsg struct {
	profile *entity.Profile
	notice  string
	err     error
}

// Model is the dashboard: a sidebar and the page of the selected section.
type Model struct {
	ctx      context.Context
	logger   *slog.Logger
	profiles profileService
	username string

	profile *entity.Profile

	section       Section
	sidebarCursor Section
	sidebarFocus  bool

	home     HomePageModel
	game     GamePageModel
	form     ProfilePageModel
	settings SettingsPageModel

	notice string
	err    error

	styles Styles
}

func New(ctx context.Context, logger *slog.Logger, profiles profileService, username string) Model {
	return Model{
		ctx:      ctx,
		logger:   logger.With("component", "ui"),
		profiles: profiles,
		username: username,

		section:      SectionHome,
		sidebarFocus: true,

		home:     NewHomePageModel(),
		game:     NewGamePageModel(),
		form:     NewProfilePageModel().SetUsername(username),
		settings: NewSettingsPageModel(),

		styles: DefaultStyles(),
	}
}

func (m Model) Section() Section {
	return m.section
}

func (m Model) Profile() *entity.Profile {
	return m.profile
}

func (m Model) Game() GamePageModel {
	return m.game
}

func (m Model) Init() tea.Cmd {
	return m.loadProfile
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.sidebarFocus {
			return m.updateSidebar(msg)
		}

		if msg.String() == "esc" {
			m.sidebarFocus = true
			return m, nil
		}
	case profileLoadedMsg:
		return m.onProfileLoaded(msg), nil
	case profileSavedMsg:
		return m.onProfileSaved(msg), nil
	case profileSubmitMsg:
		return m, m.saveProfile(msg)
	case settingsSubmitMsg:
		return m, m.saveSettings(msg)
	}

	return m.updatePage(msg)
}

func (m Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
	case "down", "j":
		if m.sidebarCursor < sectionQuit {
			m.sidebarCursor++
		}
	case "q":
		return m, tea.Quit
	case "enter", "right", "l":
		if m.sidebarCursor == sectionQuit {
			return m, tea.Quit
		}

		m.section = m.sidebarCursor
		m.sidebarFocus = m.section == SectionHome
		m.notice = ""
		m.err = nil
	}

	return m, nil
}

func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.section {
	case SectionGame:
		m.game, cmd = m.game.Update(msg)
	case SectionProfile:
		m.form, cmd = m.form.Update(msg)
	case SectionSettings:
		m.settings, cmd = m.settings.Update(msg)
	}

	return m, cmd
}

func (m Model) loadProfile() tea.Msg {
	if m.username == "" {
		return profileLoadedMsg{err: apperror.ErrNotFound}
	}

	profile, err := m.profiles.GetProfile(m.ctx, m.username)

	return profileLoadedMsg{profile: profile, err: err}
}

func (m Model) onProfileLoaded(msg profileLoadedMsg) Model {
	if errors.Is(msg.err, apperror.ErrNotFound) {
		m.notice = "No profile yet. Fill in the Profile page to create one."
		return m
	}

	if msg.err != nil {
		m.logger.Error("failed to load profile", "username", m.username, "error", msg.err)
		m.err = msg.err
		return m
	}

	return m.setProfile(msg.profile)
}

func (m Model) onProfileSaved(msg profileSavedMsg) Model {
	m.notice = ""
	m.err = msg.err

	if msg.err != nil {
		return m
	}

	m.notice = msg.notice

	return m.setProfile(msg.profile)
}

func (m Model) setProfile(profile *entity.Profile) Model {
	m.profile = profile
	m.username = profile.Username
	m.form = m.form.SetProfile(profile)
	m.settings = m.settings.SetProfile(profile)

	return m
}

func (m Model) saveProfile(msg profileSubmitMsg) tea.Cmd {
	current := m.profile

	return func() tea.Msg {
		if current == nil {
			profile, err := m.profiles.Register(m.ctx, msg.username, msg.email)
			if err == nil {
				m.logger.Info("profile created", "username", profile.Username)
			}

			return profileSavedMsg{profile: profile, notice: "Profile created.", err: err}
		}

		update := entity.ProfileUpdate{Username: &msg.username, Email: &msg.email}
		profile, err := m.profiles.UpdateProfile(m.ctx, current.Username, update)

		return profileSavedMsg{profile: profile, notice: "Profile saved.", err: err}
	}
}

func (m Model) saveSettings(msg settingsSubmitMsg) tea.Cmd {
	current := m.profile

	return func() tea.Msg {
		if current == nil {
			return profileSavedMsg{err: errors.New("create your profile before changing settings")}
		}

		settings := entity.Settings{Language: msg.language, Notifications: &msg.notifications}
		profile, err := m.profiles.UpdateSettings(m.ctx, current.Username, settings)

		return profileSavedMsg{profile: profile, notice: "Settings saved.", err: err}
	}
}

func (m Model) View() string {
	content := m.pageView()

	switch {
	case m.err != nil:
		content += "\n" + m.styles.Error.Render(m.err.Error())
	case m.notice != "":
		content += "\n" + m.styles.Notice.Render(m.notice)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebarView(),
		m.styles.Content.Render(content),
	)
}

func (m Model) pageView() string {
	switch m.section {
	case SectionGame:
		return m.game.View()
	case SectionProfile:
		return m.form.View()
	case SectionSettings:
		return m.settings.View()
	default:
		return m.home.View(m.profile)
	}
}

func (m Model) sidebarView() string {
	var sb strings.Builder

	user := "guest"
	if m.profile != nil {
		user = m.profile.Username + " (" + m.profile.Role + ")"
	}
	sb.WriteString(m.styles.SidebarUser.Render(user))
	sb.WriteString("\n")

	for i, title := range sectionTitles {
		section := Section(i)

		switch {
		case section == m.sidebarCursor && m.sidebarFocus:
			sb.WriteString(m.styles.SidebarActive.Render("> " + title))
		case section == m.section:
			sb.WriteString(m.styles.SidebarActive.Render("  " + title))
		default:
			sb.WriteString(m.styles.SidebarItem.Render(" " + title))
		}

		sb.WriteString("\n")
	}

	return m.styles.Sidebar.Render(sb.String())
}
