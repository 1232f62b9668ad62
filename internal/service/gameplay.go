package service

import (
	"fmt"

	"github.com/alexdoe/portfolio-backend/internal/entity"
	"github.com/alexdoe/portfolio-backend/internal/tictactoe"
)

// GamePlayService drives a visitor-versus-opponent tic-tac-toe game. The
// transport layer owns scheduling: after a visitor move leaves the game on
// the opponent's turn, it applies OpponentMove once the thinking delay has
// elapsed.
type GamePlayService interface {
	NewGame() *entity.Game
	VisitorMove(game *entity.Game, cell int) error
	OpponentMove(game *entity.Game) error
	Reset(game *entity.Game)
}

type gamePlayService struct {
	botService BotService
}

func NewGamePlayService(botService BotService) GamePlayService {
	return &gamePlayService{
		botService: botService,
	}
}

func (that *gamePlayService) NewGame() *entity.Game {
	return entity.NewGame()
}

func (that *gamePlayService) VisitorMove(game *entity.Game, cell int) error {
	if err := tictactoe.MakeTurn(game, entity.PlayerX, cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

func (that *gamePlayService) OpponentMove(game *entity.Game) error {
	if game.IsFinished() || game.Turn != entity.PlayerO {
		return nil
	}

	if err := that.botService.MakeTurn(game); err != nil {
		return fmt.Errorf("opponent failed to make turn: %w", err)
	}

	return nil
}

func (that *gamePlayService) Reset(game *entity.Game) {
	game.Reset()
}
