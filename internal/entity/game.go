package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/tictactoe"
)

var ErrInvalidGame = errors.New("invalid game state")

// Game is the board and the player to move, owned by a single player session.
// Board and Turn change only through Play and Reset.
type Game struct {
	ID      string            `json:"id"`
	Board   tictactoe.Board   `json:"board"`
	Turn    tictactoe.Player  `json:"player_turn"`
	Outcome tictactoe.Outcome `json:"outcome"`
	Status  string            `json:"status"`
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	game.Reset()

	return game
}

// Play - places the mark of the player to move on cell. Board and Turn are
// replaced only when the engine accepts the move.
func (that *Game) Play(cell int) bool {
	board, turn, accepted := tictactoe.ApplyMove(that.Board, that.Turn, cell)
	if !accepted {
		return false
	}

	that.Board = board
	that.Turn = turn
	that.Refresh()

	return true
}

// Reset - starts the game over.
func (that *Game) Reset() {
	that.Board, that.Turn = tictactoe.Reset()
	that.Refresh()
}

// Refresh - recomputes the outcome and the status banner from the board.
func (that *Game) Refresh() {
	that.Outcome = tictactoe.Evaluate(that.Board)
	that.Status = tictactoe.Status(that.Board, that.Turn)
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsTerminal()
}

func (that *Game) MoveCount() int {
	return tictactoe.MoveCount(that.Board)
}

// Validate - checks a game loaded from outside the process before the engine
// sees it.
func (that *Game) Validate() error {
	if that.Turn != tictactoe.PlayerX && that.Turn != tictactoe.PlayerO {
		return fmt.Errorf("%w: unknown player turn %q", ErrInvalidGame, that.Turn)
	}

	var xMarks, oMarks int
	for _, cell := range that.Board {
		switch cell {
		case tictactoe.X:
			xMarks++
		case tictactoe.O:
			oMarks++
		}
	}

	// X moves first: X is to move on equal counts, O when X is one ahead.
	lead := 0
	if that.Turn == tictactoe.PlayerO {
		lead = 1
	}

	if xMarks-oMarks != lead {
		return fmt.Errorf("%w: %d X and %d O with %s to move", ErrInvalidGame, xMarks, oMarks, that.Turn)
	}

	return nil
}
