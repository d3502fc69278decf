package model

// NewModel places one token on every start cell of every player.
func NewModel(b *Board) *Model {
	tokens := make(map[Player][]Token)
	for _, p := range Players {
		starts := b.StartFields[p.Field()]
		if len(starts) == 0 {
			continue
		}
		list := make([]Token, 0, len(starts))
		for i, c := range starts {
			list = append(list, Token{Id: i, At: c})
		}
		tokens[p] = list
	}
	return &Model{
		Board:  b,
		Tokens: tokens,
		Face:   One,
	}
}

func (b *Board) Valid(c Coordinate) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < b.Size && c.Col < b.Size
}

// InStart reports whether c belongs to the start area of p.
func (b *Board) InStart(p Player, c Coordinate) bool {
	return contains(b.StartFields[p.Field()], c)
}

// PathIndex returns the position of c along the path of p, or -1.
func (b *Board) PathIndex(p Player, c Coordinate) int {
	for i, pc := range b.Paths[p] {
		if pc == c {
			return i
		}
	}
	return -1
}

// FieldAt returns the colour label of a track or home cell.
func (b *Board) FieldAt(c Coordinate) (Field, bool) {
	return fieldAt(b.FieldColors, c)
}

// StartFieldAt returns the colour of the start area containing c.
func (b *Board) StartFieldAt(c Coordinate) (Field, bool) {
	return fieldAt(b.StartFields, c)
}

func fieldAt(fields map[Field][]Coordinate, c Coordinate) (Field, bool) {
	for f := GreenField; f <= WhiteField; f++ {
		if contains(fields[f], c) {
			return f, true
		}
	}
	return 0, false
}

func contains(list []Coordinate, c Coordinate) bool {
	for _, lc := range list {
		if lc == c {
			return true
		}
	}
	return false
}

// StartToken returns the first token of p still waiting in its start area.
func (m *Model) StartToken(p Player) (Coordinate, bool) {
	for _, t := range m.Tokens[p] {
		if m.Board.InStart(p, t.At) {
			return t.At, true
		}
	}
	return Coordinate{}, false
}

// PathToken returns the first token of p on its path and its path index.
func (m *Model) PathToken(p Player) (int, bool) {
	for _, t := range m.Tokens[p] {
		if i := m.Board.PathIndex(p, t.At); i >= 0 {
			return i, true
		}
	}
	return -1, false
}

// MoveToken moves the first token of p found at from to the cell to.
// The moved token goes to the end of the player's token list.
func (m *Model) MoveToken(p Player, from, to Coordinate) bool {
	tokens, found := m.Tokens[p]
	if !found {
		return false
	}
	for i, t := range tokens {
		if t.At != from {
			continue
		}
		moved := Token{Id: t.Id, At: to}
		rest := make([]Token, 0, len(tokens))
		rest = append(rest, tokens[:i]...)
		rest = append(rest, tokens[i+1:]...)
		m.Tokens[p] = append(rest, moved)
		return true
	}
	return false
}

// PlayerAt returns the owner of a token at c. Players are scanned in turn order.
func (m *Model) PlayerAt(c Coordinate) (Player, bool) {
	for _, p := range Players {
		for _, t := range m.Tokens[p] {
			if t.At == c {
				return p, true
			}
		}
	}
	return 0, false
}

// CopyTokens returns a deep copy of the token table.
func (m *Model) CopyTokens() map[Player][]Token {
	out := make(map[Player][]Token, len(m.Tokens))
	for p, list := range m.Tokens {
		out[p] = append([]Token(nil), list...)
	}
	return out
}
