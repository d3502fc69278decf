package model

import (
	"fmt"
	"strings"
)

var tokenRunes = map[Player]rune{Green: 'G', Red: 'R', Blue: 'B', Yellow: 'Y'}
var fieldRunes = map[Field]rune{GreenField: 'g', RedField: 'r', BlueField: 'b', YellowField: 'y', WhiteField: 'o'}

// Render draws the board and a state as text, one line per row.
// Tokens are upper case, coloured cells lower case and the die shows its face.
func Render(b *Board, s Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn %d  %s rolled %d\n", s.Turn, s.Current.Name(), s.Face)
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(cellRune(b, s, Coordinate{Row: row, Col: col}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(b *Board, s Snapshot, c Coordinate) rune {
	if p, ok := s.PlayerAt(c); ok {
		return tokenRunes[p]
	}
	if c == b.Dice {
		return rune('0' + int(s.Face))
	}
	if f, ok := b.StartFieldAt(c); ok {
		return fieldRunes[f]
	}
	if f, ok := b.FieldAt(c); ok {
		return fieldRunes[f]
	}
	return '.'
}
