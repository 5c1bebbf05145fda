package entity

type State string

const (
	StateInProgress State = "in-progress"
	StateWon        State = "won"
	StateTied       State = "tied"
)

// Status is the outcome of a game so far. Winner is set only when State is StateWon.
type Status struct {
	State  State    `json:"state"`
	Winner PlayerID `json:"winner,omitempty"`
}

func InProgress() Status {
	return Status{State: StateInProgress}
}

func WonBy(player PlayerID) Status {
	return Status{State: StateWon, Winner: player}
}

func Tied() Status {
	return Status{State: StateTied}
}

func (that Status) IsTerminal() bool {
	return that.State == StateWon || that.State == StateTied
}

func (that Status) IsWon() bool {
	return that.State == StateWon
}

func (that Status) IsTied() bool {
	return that.State == StateTied
}

// Position addresses a cell. Row 0 is the top of the board.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// MoveResult describes an accepted drop: where the piece landed and the game status afterwards.
type MoveResult struct {
	Player   PlayerID   `json:"player"`
	Position Position   `json:"position"`
	Status   Status     `json:"status"`
	Line     []Position `json:"line,omitempty"`
}

// GameSettings holds what is needed to start a game.
type GameSettings struct {
	Height      int    `json:"height"`
	Width       int    `json:"width"`
	FirstColor  string `json:"first_color"`
	SecondColor string `json:"second_color"`
}

// GameState is a detached copy of a game, safe to keep after the game moves on.
type GameState struct {
	Board    [][]PlayerID `json:"board"`
	Players  [2]Player    `json:"players"`
	Turn     PlayerID     `json:"turn"`
	Status   Status       `json:"status"`
	Moves    int          `json:"moves"`
	LastMove *Position    `json:"last_move,omitempty"`
	Line     []Position   `json:"line,omitempty"`
}

func (that GameState) Height() int {
	return len(that.Board)
}

func (that GameState) Width() int {
	if len(that.Board) == 0 {
		return 0
	}
	return len(that.Board[0])
}

// Player returns the player with the given id, or the zero Player.
func (that GameState) Player(id PlayerID) Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}
	return Player{}
}

func (that GameState) IsFinished() bool {
	return that.Status.IsTerminal()
}
