package game

// Outcome is the result of a position: still ongoing, won by one side, or
// drawn. It is always derived from a State, never stored.
type Outcome int

const (
	Ongoing Outcome = iota
	WinA
	WinB
	Draw
)

// Win returns the outcome in which p has won.
func Win(p Player) Outcome {
	if p == PlayerA {
		return WinA
	}
	return WinB
}

// Winner reports which side won, if either.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case WinA:
		return PlayerA, true
	case WinB:
		return PlayerB, true
	}
	return PlayerA, false
}

func (o Outcome) String() string {
	switch o {
	case WinA:
		return "A wins"
	case WinB:
		return "B wins"
	case Draw:
		return "draw"
	}
	return "ongoing"
}
