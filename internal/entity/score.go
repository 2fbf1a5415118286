package entity

// Score is the running tally of finished games within a session.
type Score struct {
	X    int `json:"x"`
	O    int `json:"o"`
	Draw int `json:"draw"`
}

// Record attributes one finished game to the winner, or to draws when winner is empty.
func (that *Score) Record(winner Mark) {
	switch winner {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	default:
		that.Draw++
	}
}

func (that *Score) Reset() {
	*that = Score{}
}

// IsValid reports whether every counter is non-negative.
func (that Score) IsValid() bool {
	return that.X >= 0 && that.O >= 0 && that.Draw >= 0
}

func (that Score) Total() int {
	return that.X + that.O + that.Draw
}
