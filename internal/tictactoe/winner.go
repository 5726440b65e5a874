package tictactoe

import "github.com/rocketscienceinc/tictactoe-replay/internal/entity"

// minMovesToWin - X needs three marks, which takes five moves in total.
const minMovesToWin = 5

const lineLength = entity.GridSize

// ComputeWinner reports the player of the last move if that move completed a
// row, a column or a diagonal. Only the last player is checked: a move can't
// complete a line for the opponent.
func ComputeWinner(moves []entity.Move) string {
	if len(moves) < minMovesToWin {
		return entity.EmptyCell
	}

	last := moves[len(moves)-1]

	var sameRow, sameColumn, mainDiagonal, antiDiagonal int
	for _, move := range moves {
		if move.Player != last.Player {
			continue
		}

		if move.Row == last.Row {
			sameRow++
		}
		if move.Column == last.Column {
			sameColumn++
		}
		if move.Row == move.Column {
			mainDiagonal++
		}
		if move.Row+move.Column == entity.GridSize-1 {
			antiDiagonal++
		}
	}

	if sameRow == lineLength || sameColumn == lineLength || mainDiagonal == lineLength || antiDiagonal == lineLength {
		return last.Player
	}

	return entity.EmptyCell
}
