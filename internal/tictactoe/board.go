package tictactoe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

var ErrMalformedBoard = errors.New("malformed board")

// Mark is the content of a single cell.
type Mark string

func (that Mark) valid() bool {
	return that == Empty || that == X || that == O
}

// Board is a 3x3 grid stored row-major: index = row*3 + col.
type Board [BoardSize]Mark

// NewBoard builds a Board from cells. A wrong length or an unknown mark is a
// programming error and panics; use ParseBoard for untrusted input.
func NewBoard(cells []Mark) Board {
	board, err := ParseBoard(cells)
	if err != nil {
		panic(fmt.Errorf("tictactoe: %w", err))
	}

	return board
}

// ParseBoard - builds a Board from untrusted cells.
func ParseBoard(cells []Mark) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: %d cells", ErrMalformedBoard, len(cells))
	}

	for i, cell := range cells {
		if !cell.valid() {
			return board, fmt.Errorf("%w: mark %q at cell %d", ErrMalformedBoard, cell, i)
		}
		board[i] = cell
	}

	return board, nil
}

// IsFull reports whether no cell is empty.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// String renders the board as three rows, empty cells as dots.
func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := that[row*3+col]
			if cell == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(cell))
			}
		}
		if row < 2 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells []Mark
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	board, err := ParseBoard(cells)
	if err != nil {
		return err
	}

	*that = board

	return nil
}

func (that Board) mustBeValid() {
	for i, cell := range that {
		if !cell.valid() {
			panic(fmt.Errorf("tictactoe: %w: mark %q at cell %d", ErrMalformedBoard, cell, i))
		}
	}
}
