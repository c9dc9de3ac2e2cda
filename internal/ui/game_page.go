package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/tictactoe"
)

// GamePageModel is a local hotseat game. It owns the board and the player
// to move; every change goes through the engine.
type GamePageModel struct {
	board    tictactoe.Board
	player   tictactoe.Player
	cursor   int
	rejected bool

	styles Styles
}

func NewGamePageModel() GamePageModel {
	board, player := tictactoe.Reset()

	return GamePageModel{
		board:  board,
		player: player,
		cursor: 4,
		styles: DefaultStyles(),
	}
}

func (m GamePageModel) Board() tictactoe.Board {
	return m.board
}

func (m GamePageModel) Player() tictactoe.Player {
	return m.player
}

func (m GamePageModel) Update(msg tea.Msg) (GamePageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "up", "k":
		if m.cursor >= 3 {
			m.cursor -= 3
		}
	case "down", "j":
		if m.cursor < 6 {
			m.cursor += 3
		}
	case "left", "h":
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case "enter", " ":
		m.play(m.cursor)
	case "r":
		m.board, m.player = tictactoe.Reset()
		m.rejected = false
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		m.cursor = n - 1
		m.play(m.cursor)
	}

	return m, nil
}

func (m *GamePageModel) play(cell int) {
	board, player, accepted := tictactoe.ApplyMove(m.board, m.player, cell)
	m.rejected = !accepted

	if accepted {
		m.board = board
		m.player = player
	}
}

func (m GamePageModel) View() string {
	outcome := tictactoe.Evaluate(m.board)

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Tic Tac Toe"))
	sb.WriteString("\n")

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, m.renderCell(row*3+col, outcome))
		}

		sb.WriteString(strings.Join(cells, "│"))
		sb.WriteString("\n")

		if row < 2 {
			sb.WriteString("───┼───┼───\n")
		}
	}

	sb.WriteString(m.styles.Status.Render(tictactoe.Status(m.board, m.player)))

	if m.rejected {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render("That square is not available."))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("arrows move • enter/1-9 play • r reset • esc menu"))

	return sb.String()
}

func (m GamePageModel) renderCell(cell int, outcome tictactoe.Outcome) string {
	text := string(m.board[cell])
	if text == "" {
		text = " "
	}

	switch {
	case outcome.Highlights(cell):
		return m.styles.CellWinning.Render(text)
	case cell == m.cursor:
		return m.styles.CellCursor.Render(text)
	default:
		return m.styles.Cell.Render(text)
	}
}
