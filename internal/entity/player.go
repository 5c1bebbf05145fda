package entity

// PlayerID identifies a participant. The zero value doubles as the empty cell.
type PlayerID int

const (
	None PlayerID = iota
	First
	Second
)

// Other returns the opponent of that player, or None for None.
func (that PlayerID) Other() PlayerID {
	switch that {
	case First:
		return Second
	case Second:
		return First
	default:
		return None
	}
}

func (that PlayerID) String() string {
	switch that {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "none"
	}
}

type Player struct {
	ID    PlayerID `json:"id"`
	Color string   `json:"color"`
}
