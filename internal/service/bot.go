package service

import (
	"errors"
	"fmt"

	"github.com/alexdoe/portfolio-backend/internal/entity"
	"github.com/alexdoe/portfolio-backend/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// centerCell and cornerCells drive the positional tiers of the heuristic.
const centerCell = 4

var cornerCells = []int{0, 2, 6, 8}

// randSource is the pluggable randomness used for the lower heuristic tiers.
// math/rand's *Rand satisfies it; tests substitute a fixed source.
type randSource interface {
	Intn(n int) int
}

type BotService interface {
	PickCell(game *entity.Game) (int, error)
	MakeTurn(game *entity.Game) error
}

type botService struct {
	rnd randSource
}

func NewBotService(rnd randSource) BotService {
	return &botService{
		rnd: rnd,
	}
}

// PickCell selects the opponent's move by fixed priority: take an immediate
// win, block the visitor's immediate win, take the center, take a random free
// corner, take a random free cell. The final tier is exhaustive for any
// non-full board, so selection always terminates.
func (that *botService) PickCell(game *entity.Game) (int, error) {
	freeCells := game.FreeCells()
	if len(freeCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if cell, ok := findWinningCell(game, entity.PlayerO); ok {
		return cell, nil
	}

	if cell, ok := findWinningCell(game, entity.PlayerX); ok {
		return cell, nil
	}

	if game.Board[centerCell] == entity.EmptyCell {
		return centerCell, nil
	}

	freeCorners := make([]int, 0, len(cornerCells))
	for _, corner := range cornerCells {
		if game.Board[corner] == entity.EmptyCell {
			freeCorners = append(freeCorners, corner)
		}
	}
	if len(freeCorners) > 0 {
		return freeCorners[that.rnd.Intn(len(freeCorners))], nil
	}

	return freeCells[that.rnd.Intn(len(freeCells))], nil
}

func (that *botService) MakeTurn(game *entity.Game) error {
	cell, err := that.PickCell(game)
	if err != nil {
		return fmt.Errorf("failed to pick cell: %w", err)
	}

	if err = tictactoe.MakeTurn(game, entity.PlayerO, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// findWinningCell reports the free cell that completes a line for the given
// mark, if one exists.
func findWinningCell(game *entity.Game, mark string) (int, bool) {
	for _, cell := range game.FreeCells() {
		board := game.Board
		board[cell] = mark

		probe := entity.Game{Board: board}
		if winner, _ := probe.DetermineGameResult(); winner == mark {
			return cell, true
		}
	}

	return 0, false
}
