package tictactoe

// Status returns the banner shown above the board.
func Status(board Board, next Player) string {
	outcome := Evaluate(board)

	switch outcome.State {
	case Won:
		return "Winner: " + string(outcome.Winner)
	case Drawn:
		return "Draw!"
	default:
		return "Next player: " + string(next)
	}
}
