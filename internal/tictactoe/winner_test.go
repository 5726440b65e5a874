package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
)

// movesFor builds a ledger where X takes the line cells and O fills the given
// filler cells in between, X moving last.
func movesFor(line [3][2]int, filler [2][2]int) []entity.Move {
	return []entity.Move{
		{Player: entity.PlayerX, Row: line[0][0], Column: line[0][1]},
		{Player: entity.PlayerO, Row: filler[0][0], Column: filler[0][1]},
		{Player: entity.PlayerX, Row: line[1][0], Column: line[1][1]},
		{Player: entity.PlayerO, Row: filler[1][0], Column: filler[1][1]},
		{Player: entity.PlayerX, Row: line[2][0], Column: line[2][1]},
	}
}

func TestComputeWinner(t *testing.T) {
	t.Run("All eight lines win for X", func(t *testing.T) {
		lines := map[string]struct {
			line   [3][2]int
			filler [2][2]int
		}{
			"top row":       {line: [3][2]int{{0, 0}, {0, 1}, {0, 2}}, filler: [2][2]int{{1, 0}, {2, 0}}},
			"middle row":    {line: [3][2]int{{1, 0}, {1, 1}, {1, 2}}, filler: [2][2]int{{0, 0}, {2, 0}}},
			"bottom row":    {line: [3][2]int{{2, 0}, {2, 1}, {2, 2}}, filler: [2][2]int{{0, 0}, {1, 0}}},
			"left column":   {line: [3][2]int{{0, 0}, {1, 0}, {2, 0}}, filler: [2][2]int{{0, 1}, {0, 2}}},
			"middle column": {line: [3][2]int{{0, 1}, {1, 1}, {2, 1}}, filler: [2][2]int{{0, 0}, {0, 2}}},
			"right column":  {line: [3][2]int{{0, 2}, {1, 2}, {2, 2}}, filler: [2][2]int{{0, 0}, {0, 1}}},
			"main diagonal": {line: [3][2]int{{0, 0}, {1, 1}, {2, 2}}, filler: [2][2]int{{0, 1}, {0, 2}}},
			"anti diagonal": {line: [3][2]int{{0, 2}, {1, 1}, {2, 0}}, filler: [2][2]int{{0, 0}, {0, 1}}},
		}

		for name, tc := range lines {
			t.Run(name, func(t *testing.T) {
				// Given: X completes the line with its third mark
				moves := movesFor(tc.line, tc.filler)

				// When: computing the winner
				winner := ComputeWinner(moves)

				// Then: X has won
				assert.Equal(t, entity.PlayerX, winner)
			})
		}
	})

	t.Run("O wins on the sixth move", func(t *testing.T) {
		// Given: O completes the middle column
		moves := []entity.Move{
			{Player: entity.PlayerX, Row: 0, Column: 0},
			{Player: entity.PlayerO, Row: 0, Column: 1},
			{Player: entity.PlayerX, Row: 0, Column: 2},
			{Player: entity.PlayerO, Row: 1, Column: 1},
			{Player: entity.PlayerX, Row: 1, Column: 0},
			{Player: entity.PlayerO, Row: 2, Column: 1},
		}

		// When: computing the winner
		winner := ComputeWinner(moves)

		// Then: O has won
		assert.Equal(t, entity.PlayerO, winner)
	})

	t.Run("Diagonal scenario from the first five moves", func(t *testing.T) {
		// Given: X at (0,0), O at (0,1), X at (1,1), O at (0,2), X at (2,2)
		moves := []entity.Move{
			{Player: entity.PlayerX, Row: 0, Column: 0},
			{Player: entity.PlayerO, Row: 0, Column: 1},
			{Player: entity.PlayerX, Row: 1, Column: 1},
			{Player: entity.PlayerO, Row: 0, Column: 2},
			{Player: entity.PlayerX, Row: 2, Column: 2},
		}

		// Then: X wins after the fifth move, not before
		assert.Equal(t, entity.EmptyCell, ComputeWinner(moves[:4]))
		assert.Equal(t, entity.PlayerX, ComputeWinner(moves))
	})

	t.Run("No line means no winner", func(t *testing.T) {
		// Given: five moves with two X marks in a row and one elsewhere
		moves := []entity.Move{
			{Player: entity.PlayerX, Row: 0, Column: 0},
			{Player: entity.PlayerO, Row: 1, Column: 1},
			{Player: entity.PlayerX, Row: 0, Column: 1},
			{Player: entity.PlayerO, Row: 0, Column: 2},
			{Player: entity.PlayerX, Row: 2, Column: 1},
		}

		// When: computing the winner
		winner := ComputeWinner(moves)

		// Then: there is none
		assert.Equal(t, entity.EmptyCell, winner)
	})

	t.Run("Fewer than five moves never win", func(t *testing.T) {
		// Given: an empty ledger and a short ledger
		short := []entity.Move{
			{Player: entity.PlayerX, Row: 0, Column: 0},
			{Player: entity.PlayerO, Row: 1, Column: 1},
		}

		// Then: there is no winner
		assert.Equal(t, entity.EmptyCell, ComputeWinner(nil))
		assert.Equal(t, entity.EmptyCell, ComputeWinner(short))
	})

	t.Run("Full board without a line", func(t *testing.T) {
		// Given: a draw
		moves := []entity.Move{
			{Player: entity.PlayerX, Row: 0, Column: 0},
			{Player: entity.PlayerO, Row: 0, Column: 1},
			{Player: entity.PlayerX, Row: 0, Column: 2},
			{Player: entity.PlayerO, Row: 1, Column: 1},
			{Player: entity.PlayerX, Row: 1, Column: 0},
			{Player: entity.PlayerO, Row: 1, Column: 2},
			{Player: entity.PlayerX, Row: 2, Column: 1},
			{Player: entity.PlayerO, Row: 2, Column: 0},
			{Player: entity.PlayerX, Row: 2, Column: 2},
		}

		// Then: there is no winner
		assert.Equal(t, entity.EmptyCell, ComputeWinner(moves))
	})
}
