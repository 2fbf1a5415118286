package entity

type Player struct {
	Mark Mark
	Name string
}

// Players maps each mark to the display name shown by the UI.
type Players struct {
	X Player
	O Player
}

func NewPlayers(xName, oName string) Players {
	if xName == "" {
		xName = "Player X"
	}
	if oName == "" {
		oName = "Player O"
	}

	return Players{
		X: Player{Mark: PlayerX, Name: xName},
		O: Player{Mark: PlayerO, Name: oName},
	}
}

func (that Players) ByMark(mark Mark) Player {
	if mark == PlayerO {
		return that.O
	}
	return that.X
}
