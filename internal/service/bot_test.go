package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdoe/portfolio-backend/internal/entity"
)

// fixedRand always selects the same index, clamped to the range, which makes
// the random tiers deterministic.
type fixedRand struct {
	v int
}

func (that fixedRand) Intn(n int) int {
	if that.v >= n {
		return n - 1
	}
	return that.v
}

func TestBotService_PickCell(t *testing.T) {
	t.Run("Completes its own win before blocking", func(t *testing.T) {
		// Given: O can win at cell 5 while X threatens at cell 2
		game := entity.NewGame()
		game.Board = [9]string{entity.PlayerX, entity.PlayerX, entity.EmptyCell, entity.PlayerO, entity.PlayerO, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell}

		bot := NewBotService(fixedRand{})

		// When: the opponent picks a cell
		cell, err := bot.PickCell(game)

		// Then: it completes its own row instead of blocking
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Takes the immediate win", func(t *testing.T) {
		// Given: O holds cells 0 and 1
		game := entity.NewGame()
		game.Board = [9]string{entity.PlayerO, entity.PlayerO, entity.EmptyCell, entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell}

		bot := NewBotService(fixedRand{})

		// When: the opponent picks a cell
		cell, err := bot.PickCell(game)

		// Then: it completes the top row
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks the visitor's immediate win", func(t *testing.T) {
		// Given: X threatens the top row at cell 2 and O has no win
		game := entity.NewGame()
		game.Board = [9]string{entity.PlayerX, entity.PlayerX, entity.EmptyCell, entity.PlayerO, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell}

		bot := NewBotService(fixedRand{})

		// When: the opponent picks a cell
		cell, err := bot.PickCell(game)

		// Then: it blocks cell 2
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Takes the center when free", func(t *testing.T) {
		// Given: a single X in a corner, no threats
		game := entity.NewGame()
		game.Board[0] = entity.PlayerX

		bot := NewBotService(fixedRand{})

		// When: the opponent picks a cell
		cell, err := bot.PickCell(game)

		// Then: it takes the center
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
	})

	t.Run("Falls back to a free corner when the center is taken", func(t *testing.T) {
		// Given: X in two corners, O in the center, no win or block available
		game := entity.NewGame()
		game.Board = [9]string{entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.PlayerO, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.PlayerX}

		// When/Then: each random draw maps to one of the free corners
		cell, err := NewBotService(fixedRand{v: 0}).PickCell(game)
		require.NoError(t, err)
		assert.Equal(t, 2, cell)

		cell, err = NewBotService(fixedRand{v: 1}).PickCell(game)
		require.NoError(t, err)
		assert.Equal(t, 6, cell)
	})

	t.Run("Falls back to any free cell when corners are gone", func(t *testing.T) {
		// Given: only edge cell 3 is free and no tier above applies
		game := entity.NewGame()
		game.Board = [9]string{entity.PlayerX, entity.PlayerO, entity.PlayerX, entity.EmptyCell, entity.PlayerO, entity.PlayerX, entity.PlayerO, entity.PlayerX, entity.PlayerO}

		bot := NewBotService(fixedRand{})

		// When: the opponent picks a cell
		cell, err := bot.PickCell(game)

		// Then: the last free cell is chosen
		require.NoError(t, err)
		assert.Equal(t, 3, cell)
	})

	t.Run("Error on full board", func(t *testing.T) {
		// Given: a board with no free cells
		game := entity.NewGame()
		game.Board = [9]string{entity.PlayerX, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerX, entity.PlayerO, entity.PlayerX, entity.PlayerO}

		bot := NewBotService(fixedRand{})

		// When: the opponent picks a cell
		_, err := bot.PickCell(game)

		// Then: ErrNoAvailableMoves is returned
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestBotService_MakeTurn(t *testing.T) {
	// Given: a game where it is O's turn and O can win
	game := entity.NewGame()
	game.Board = [9]string{entity.PlayerO, entity.PlayerO, entity.EmptyCell, entity.PlayerX, entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell}
	game.Turn = entity.PlayerO

	bot := NewBotService(fixedRand{})

	// When: the opponent takes its turn
	err := bot.MakeTurn(game)

	// Then: the winning mark is placed and the game is finished
	require.NoError(t, err)
	require.Equal(t, entity.PlayerO, game.Board[2])
	require.True(t, game.IsFinished())
	assert.Equal(t, entity.PlayerO, game.Winner)
}
