package connectfour

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	MinDimension  = WinLength
	DefaultHeight = 6
	DefaultWidth  = 7
)

// Game is a single connect-four match. It is not safe for concurrent use;
// callers sharing a Game across goroutines must serialize access.
type Game struct {
	board    *Board
	players  [2]entity.Player
	turn     entity.PlayerID
	status   entity.Status
	moves    int
	lastMove *entity.Position
	line     []entity.Position
}

// New starts a game on an empty height x width board with the first player to move.
func New(height, width int, firstColor, secondColor string) (*Game, error) {
	if height < MinDimension || width < MinDimension {
		return nil, fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			apperror.ErrConfiguration, height, width, MinDimension, MinDimension)
	}

	firstColor, secondColor = strings.TrimSpace(firstColor), strings.TrimSpace(secondColor)
	if firstColor == "" || secondColor == "" {
		return nil, fmt.Errorf("%w: both players need a color", apperror.ErrConfiguration)
	}

	if strings.EqualFold(firstColor, secondColor) {
		return nil, fmt.Errorf("%w: players share the color %q", apperror.ErrConfiguration, firstColor)
	}

	return &Game{
		board: newBoard(height, width),
		players: [2]entity.Player{
			{ID: entity.First, Color: firstColor},
			{ID: entity.Second, Color: secondColor},
		},
		turn:   entity.First,
		status: entity.InProgress(),
	}, nil
}

// DropPiece drops the current player's piece into column.
// On error the game is left exactly as it was.
func (that *Game) DropPiece(column int) (entity.MoveResult, error) {
	if that.status.IsTerminal() {
		return entity.MoveResult{}, apperror.ErrGameOver
	}

	if column < 0 || column >= that.board.Width() {
		return entity.MoveResult{}, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	row := that.board.lowestEmptyRow(column)
	if row < 0 {
		return entity.MoveResult{}, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	player := that.turn
	that.board.place(row, column, player)
	that.moves++
	that.lastMove = &entity.Position{Row: row, Column: column}

	result := entity.MoveResult{
		Player:   player,
		Position: entity.Position{Row: row, Column: column},
	}

	// a win on the last free cell is still a win
	if line := findWin(that.board, row, column, player); line != nil {
		that.status = entity.WonBy(player)
		that.line = line
		result.Line = line
	} else if that.board.IsFull() {
		that.status = entity.Tied()
	} else {
		that.turn = player.Other()
	}

	result.Status = that.status

	return result, nil
}

func (that *Game) Status() entity.Status {
	return that.status
}

func (that *Game) IsFinished() bool {
	return that.status.IsTerminal()
}

// Board returns a read-only view of the grid.
func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) CurrentPlayer() entity.Player {
	return that.Player(that.turn)
}

// Player returns the player with the given id, or the zero Player for None.
func (that *Game) Player(id entity.PlayerID) entity.Player {
	switch id {
	case entity.First:
		return that.players[0]
	case entity.Second:
		return that.players[1]
	default:
		return entity.Player{}
	}
}

func (that *Game) Players() [2]entity.Player {
	return that.players
}

func (that *Game) Moves() int {
	return that.moves
}

// ValidColumns lists the columns that still accept a piece, left to right.
// It is empty once the game is over.
func (that *Game) ValidColumns() []int {
	if that.status.IsTerminal() {
		return nil
	}

	columns := make([]int, 0, that.board.Width())
	for column := 0; column < that.board.Width(); column++ {
		if that.board.lowestEmptyRow(column) >= 0 {
			columns = append(columns, column)
		}
	}

	return columns
}

// State returns a snapshot that shares no memory with the game.
func (that *Game) State() entity.GameState {
	state := entity.GameState{
		Board:   that.board.Cells(),
		Players: that.Players(),
		Turn:    that.turn,
		Status:  that.status,
		Moves:   that.moves,
	}

	if that.lastMove != nil {
		lastMove := *that.lastMove
		state.LastMove = &lastMove
	}

	if that.line != nil {
		state.Line = append([]entity.Position(nil), that.line...)
	}

	return state
}
