package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	PlayerX   = "X" // the site visitor
	PlayerO   = "O" // the heuristic opponent
	PlayerTie = "-"

	EmptyCell = ""
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Game struct {
	Board   [9]string `json:"board"`
	Turn    string    `json:"turn"`
	Status  string    `json:"status"`
	Winner  string    `json:"winner,omitempty"`
	WinLine []int     `json:"win_line,omitempty"`
}

// NewGame returns an empty board with the visitor to move.
func NewGame() *Game {
	return &Game{
		Board:  [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// DetermineGameResult derives the result from the board alone: the winning
// mark and its line, PlayerTie on a full board, or an empty string while the
// game is still in progress.
func (that *Game) DetermineGameResult() (string, []int) {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a, []int{combo[0], combo[1], combo[2]}
		}
	}

	for _, cell := range that.Board {
		if cell == EmptyCell {
			return "", nil
		}
	}

	return PlayerTie, nil
}

func (that *Game) UpdateGameState() {
	switch winner, line := that.DetermineGameResult(); winner {
	case PlayerX, PlayerO:
		that.Winner = winner
		that.WinLine = line
		that.Status = StatusFinished
		that.Turn = ""
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) FreeCells() []int {
	cells := make([]int, 0, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

// Reset reinitializes the game to an empty board with the visitor to move,
// regardless of the prior outcome.
func (that *Game) Reset() {
	*that = *NewGame()
}
