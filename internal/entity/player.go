package entity

// Mark is the content of a single board cell.
type Mark int

const (
	MarkEmpty Mark = iota
	MarkCross
	MarkNought
)

func (that Mark) String() string {
	switch that {
	case MarkCross:
		return "X"
	case MarkNought:
		return "O"
	default:
		return ""
	}
}

// Player is one of the two seats at the table. PlayerA always moves first.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

// Mark - returns the mark the player places. The mapping never changes.
func (that Player) Mark() Mark {
	if that == PlayerB {
		return MarkNought
	}
	return MarkCross
}

// Opponent - returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (that Player) String() string {
	if that == PlayerB {
		return "Player2"
	}
	return "Player1"
}
