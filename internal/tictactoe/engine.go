// Package tictactoe is the game engine: a pure outcome evaluator and a pure
// move transition. It keeps no state between calls; callers own the Board and
// the Player to move and replace both after every accepted move.
package tictactoe

import "fmt"

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

// FirstPlayer moves on every even move count.
const FirstPlayer = PlayerX

const (
	InProgress State = iota
	Won
	Drawn
)

// Lines lists every winning line. Rows, then columns, then diagonals; the
// order decides which line is reported when several are complete.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Player is the side to move.
type Player string

// Mark returns the mark the player places.
func (that Player) Mark() Mark {
	switch that {
	case PlayerX:
		return X
	case PlayerO:
		return O
	default:
		panic(fmt.Sprintf("tictactoe: unknown player %q", string(that)))
	}
}

// Opponent returns the other player.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		panic(fmt.Sprintf("tictactoe: unknown player %q", string(that)))
	}
}

// Line is a triple of cell indexes.
type Line [3]int

// State of a game.
type State int

func (that State) String() string {
	switch that {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

func (that State) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "in_progress":
		*that = InProgress
	case "won":
		*that = Won
	case "drawn":
		*that = Drawn
	default:
		return fmt.Errorf("unknown game state %q", string(text))
	}

	return nil
}

// Outcome is the result of evaluating a board. Winner and Line are set only
// when State is Won.
type Outcome struct {
	State  State  `json:"state"`
	Winner Player `json:"winner,omitempty"`
	Line   *Line  `json:"line,omitempty"`
}

// IsTerminal reports whether no further move is accepted.
func (that Outcome) IsTerminal() bool {
	return that.State != InProgress
}

// Highlights reports whether the cell belongs to the winning line.
func (that Outcome) Highlights(cell int) bool {
	if that.State != Won || that.Line == nil {
		return false
	}

	for _, i := range that.Line {
		if i == cell {
			return true
		}
	}

	return false
}

// Evaluate returns the outcome of the board. The first complete line in
// Lines order wins; a full board without one is a draw.
func Evaluate(board Board) Outcome {
	board.mustBeValid()

	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != Empty && a == b && b == c {
			winning := line
			return Outcome{State: Won, Winner: Player(a), Line: &winning}
		}
	}

	if board.IsFull() {
		return Outcome{State: Drawn}
	}

	return Outcome{State: InProgress}
}

// ApplyMove places the player's mark on cell. The move is rejected, and the
// inputs are returned unchanged, when the game is already decided, the cell
// is out of range, or the cell is taken.
func ApplyMove(board Board, player Player, cell int) (Board, Player, bool) {
	mark := player.Mark()

	if Evaluate(board).IsTerminal() {
		return board, player, false
	}

	if cell < 0 || cell >= BoardSize {
		return board, player, false
	}

	if board[cell] != Empty {
		return board, player, false
	}

	next := board
	next[cell] = mark

	return next, player.Opponent(), true
}

// Reset returns an empty board and the first player.
func Reset() (Board, Player) {
	return Board{}, FirstPlayer
}

// MoveCount returns the number of marks on the board.
func MoveCount(board Board) int {
	count := 0
	for _, cell := range board {
		if cell != Empty {
			count++
		}
	}

	return count
}

// NextPlayer derives the player to move from move-count parity.
func NextPlayer(board Board) Player {
	if MoveCount(board)%2 == 0 {
		return FirstPlayer
	}

	return FirstPlayer.Opponent()
}
