package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdoe/portfolio-backend/internal/apperror"
	"github.com/alexdoe/portfolio-backend/internal/entity"
)

func TestMakeTurn(t *testing.T) {
	t.Run("Valid move", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame()

		// When: the visitor plays cell 0
		err := MakeTurn(game, entity.PlayerX, 0)

		// Then: the mark is placed and the turn passes to the opponent
		require.NoError(t, err)
		require.Equal(t, entity.PlayerX, game.Board[0])
		require.Equal(t, entity.PlayerO, game.Turn)
		require.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game with cell 0 taken by X
		game := entity.NewGame()
		require.NoError(t, MakeTurn(game, entity.PlayerX, 0))
		snapshot := *game

		// When: O tries the same cell
		err := MakeTurn(game, entity.PlayerO, 0)

		// Then: an ErrCellOccupied error is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, snapshot, *game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where X moves first
		game := entity.NewGame()

		// When: O tries to move first
		err := MakeTurn(game, entity.PlayerO, 1)

		// Then: an ErrNotYourTurn error is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, *entity.NewGame(), *game)
	})

	t.Run("Invalid cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame()

		// When: a cell outside the board is played
		err := MakeTurn(game, entity.PlayerX, 20)

		// Then: ErrInvalidCell is returned
		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Invalid negative cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame()

		// When: a negative cell index is played
		err := MakeTurn(game, entity.PlayerX, -1)

		// Then: ErrInvalidCell is returned
		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a game X has already won
		game := entity.NewGame()
		game.Board = [9]string{entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.EmptyCell, entity.PlayerO, entity.EmptyCell, entity.EmptyCell, entity.PlayerO, entity.EmptyCell}
		game.UpdateGameState()

		// When: O tries to move anyway
		err := MakeTurn(game, entity.PlayerO, 3)

		// Then: an ErrGameFinished error is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes and exposes the line", func(t *testing.T) {
		// Given: X about to complete the top row
		game := entity.NewGame()
		game.Board = [9]string{entity.PlayerX, entity.PlayerX, entity.EmptyCell, entity.PlayerO, entity.PlayerO, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell}

		// When: X plays cell 2
		err := MakeTurn(game, entity.PlayerX, 2)

		// Then: the game finishes with X as winner on the top row
		require.NoError(t, err)
		require.True(t, game.IsFinished())
		require.Equal(t, entity.PlayerX, game.Winner)
		assert.Equal(t, []int{0, 1, 2}, game.WinLine)
	})
}
