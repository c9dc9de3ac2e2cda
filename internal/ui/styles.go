package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = lipgloss.Color("#7D56F4")
	colorWin    = lipgloss.Color("#04B575")
	colorMuted  = lipgloss.Color("#626262")
	colorError  = lipgloss.Color("#FF5F87")
)

// Styles groups every style the dashboard renders with.
type Styles struct {
	Sidebar       lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style
	SidebarUser   lipgloss.Style
	Content       lipgloss.Style
	Title         lipgloss.Style
	Cell          lipgloss.Style
	CellCursor    lipgloss.Style
	CellWinning   lipgloss.Style
	Status        lipgloss.Style
	Notice        lipgloss.Style
	Error         lipgloss.Style
	Help          lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Sidebar: lipgloss.NewStyle().
			Width(22).
			Padding(1, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(colorMuted),
		SidebarItem:   lipgloss.NewStyle().PaddingLeft(2),
		SidebarActive: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(colorAccent),
		SidebarUser:   lipgloss.NewStyle().Foreground(colorMuted).MarginBottom(1),
		Content:       lipgloss.NewStyle().Padding(1, 2),
		Title:         lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Cell:          lipgloss.NewStyle().Width(3).Align(lipgloss.Center),
		CellCursor:    lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Reverse(true),
		CellWinning:   lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Bold(true).Foreground(colorWin),
		Status:        lipgloss.NewStyle().Bold(true).MarginTop(1),
		Notice:        lipgloss.NewStyle().Foreground(colorWin),
		Error:         lipgloss.NewStyle().Foreground(colorError),
		Help:          lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
