package tictactoe

import (
	"errors"
	"fmt"

	"github.com/alexdoe/portfolio-backend/internal/apperror"
	"github.com/alexdoe/portfolio-backend/internal/entity"
)

var ErrInvalidCell = errors.New("invalid cell index")

// MakeTurn places the given mark on the board and re-evaluates the terminal
// condition. Moves on occupied cells, out of turn, or after the game has
// finished leave the board untouched.
func MakeTurn(game *entity.Game, mark string, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = mark
	game.Turn = toggleMark(mark)
	game.UpdateGameState()

	return nil
}

func validateMove(game *entity.Game, mark string, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return ErrInvalidCell
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
