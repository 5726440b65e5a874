package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-replay/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
)

func TestDerivedView(t *testing.T) {
	t.Run("Empty game", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: deriving the view at the start
		view, err := DerivedView(game, 0)
		require.NoError(t, err)

		// Then: the board is empty and X is next
		assert.Equal(t, [3][3]string{}, view.Board)
		assert.Equal(t, entity.PlayerX, view.NextPlayer)
		assert.Equal(t, entity.StatusOngoing, view.Status)
		assert.Equal(t, "Next player: X", view.Message)
		assert.False(t, view.Replaying)
		require.Len(t, view.History, 1)
		assert.Equal(t, "Go to game start", view.History[0].Label)
		assert.True(t, view.History[0].Current)
	})

	t.Run("View reflects exactly the first pointer moves", func(t *testing.T) {
		// Given: four moves were played
		game := entity.NewGame("123")
		playAll(t, game, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}, [2]int{0, 2})

		for pointer := 0; pointer <= len(game.Moves); pointer++ {
			// When: deriving the view at each point of history
			view, err := DerivedView(game, pointer)
			require.NoError(t, err)

			// Then: exactly pointer cells are marked, each by the move that played it
			assert.Equal(t, pointer, view.CountMarks())
			for _, move := range game.Moves[:pointer] {
				assert.Equal(t, move.Player, view.Board[move.Row][move.Column])
			}
			assert.Equal(t, pointer < len(game.Moves), view.Replaying)
			assert.Equal(t, len(game.Moves), view.Total)
		}
	})

	t.Run("Pointer zero is always an empty board with X next", func(t *testing.T) {
		// Given: a finished game
		game := entity.NewGame("123")
		playAll(t, game, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{0, 2}, [2]int{2, 2})

		// When: jumping to the start
		require.NoError(t, JumpToMove(game, 0))
		view, err := DerivedView(game, game.Pointer)
		require.NoError(t, err)

		// Then: the board is empty, X is next and the winner is hidden
		assert.Equal(t, 0, view.CountMarks())
		assert.Equal(t, entity.PlayerX, view.NextPlayer)
		assert.Equal(t, entity.EmptyCell, view.Winner)
		assert.True(t, view.Replaying)
	})

	t.Run("Winner is shown at the end of history only", func(t *testing.T) {
		// Given: X won on the fifth move
		game := entity.NewGame("123")
		playAll(t, game, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{0, 2}, [2]int{2, 2})

		// When: deriving the view at the end and one move earlier
		final, err := DerivedView(game, 5)
		require.NoError(t, err)
		earlier, err := DerivedView(game, 4)
		require.NoError(t, err)

		// Then: the final view is finished, the earlier one is still ongoing
		assert.Equal(t, entity.PlayerX, final.Winner)
		assert.Equal(t, entity.StatusFinished, final.Status)
		assert.Equal(t, "Winner: X", final.Message)
		assert.Equal(t, entity.EmptyCell, earlier.Winner)
		assert.Equal(t, entity.StatusOngoing, earlier.Status)
	})

	t.Run("Full board without a winner is a draw", func(t *testing.T) {
		// Given: nine moves without a line
		game := entity.NewGame("123")
		playAll(t, game, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 1}, [2]int{1, 0},
			[2]int{1, 2}, [2]int{2, 1}, [2]int{2, 0}, [2]int{2, 2})

		// When: deriving the view at move nine
		view, err := DerivedView(game, 9)
		require.NoError(t, err)

		// Then: all nine cells are occupied and nobody has won
		assert.Equal(t, entity.CellCount, view.CountMarks())
		assert.Equal(t, entity.EmptyCell, view.Winner)
		assert.Equal(t, entity.StatusDraw, view.Status)
		assert.Equal(t, "Draw", view.Message)
	})

	t.Run("History lists every jump target", func(t *testing.T) {
		// Given: two moves were played and the game jumped back to move 1
		game := entity.NewGame("123")
		playAll(t, game, [2]int{0, 0}, [2]int{1, 1})
		require.NoError(t, JumpToMove(game, 1))

		// When: deriving the current view
		view, err := DerivedView(game, game.Pointer)
		require.NoError(t, err)

		// Then: start plus two moves are listed and move 1 is current
		require.Len(t, view.History, 3)
		assert.Nil(t, view.History[0].Move)
		assert.Equal(t, "Go to move #1", view.History[1].Label)
		assert.Equal(t, &entity.Move{Player: entity.PlayerX, Row: 0, Column: 0}, view.History[1].Move)
		assert.True(t, view.History[1].Current)
		assert.Equal(t, "Go to move #2", view.History[2].Label)
		assert.False(t, view.History[2].Current)
		assert.Equal(t, entity.PlayerO, view.NextPlayer)
	})

	t.Run("Out of range pointer", func(t *testing.T) {
		// Given: a game with one move
		game := entity.NewGame("123")
		playAll(t, game, [2]int{0, 0})

		// When: deriving a view past the ledger
		view, err := DerivedView(game, 2)

		// Then: ErrInvalidJump is returned
		require.ErrorIs(t, err, apperror.ErrInvalidJump)
		assert.Nil(t, view)
	})
}
