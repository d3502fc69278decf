package model

// ServerMessage is what a spectator receives. Setup is only sent once.
type ServerMessage struct {
	Setup  []Board
	States []Snapshot
}

// Snapshot is a copy of the mutable state taken after a commit.
type Snapshot struct {
	Turn    int
	Current Player
	Face    Face
	Dice    Coordinate
	Tokens  map[Player][]Token
	Walking bool
}

// PlayerAt mirrors Model.PlayerAt on a copied state.
func (s Snapshot) PlayerAt(c Coordinate) (Player, bool) {
	for _, p := range Players {
		for _, t := range s.Tokens[p] {
			if t.At == c {
				return p, true
			}
		}
	}
	return 0, false
}
