package model

import "fmt"

// Player is one of the four fixed colours.
type Player int

const (
	Green Player = iota + 1
	Red
	Blue
	Yellow
)

// Players lists every player in turn order.
var Players = []Player{Green, Red, Blue, Yellow}

// Next returns the player whose turn follows p.
func (p Player) Next() Player {
	switch p {
	case Green:
		return Red
	case Red:
		return Blue
	case Blue:
		return Yellow
	default:
		return Green
	}
}

func (p Player) Field() Field {
	switch p {
	case Green:
		return GreenField
	case Red:
		return RedField
	case Blue:
		return BlueField
	case Yellow:
		return YellowField
	default:
		return WhiteField
	}
}

func (p Player) Name() string {
	switch p {
	case Green:
		return "GREEN"
	case Red:
		return "RED"
	case Blue:
		return "BLUE"
	case Yellow:
		return "YELLOW"
	default:
		return fmt.Sprintf("N/A(%d)", p)
	}
}

// Field labels a set of board cells by colour.
type Field int

const (
	GreenField Field = iota + 1
	YellowField
	BlueField
	RedField
	WhiteField
)

func (f Field) Name() string {
	switch f {
	case GreenField:
		return "GREEN_FIELD"
	case YellowField:
		return "YELLOW_FIELD"
	case BlueField:
		return "BLUE_FIELD"
	case RedField:
		return "RED_FIELD"
	case WhiteField:
		return "WHITE_FIELD"
	default:
		return fmt.Sprintf("N/A(%d)", f)
	}
}

type Coordinate struct {
	Row, Col int
}

// Face is the value shown by the die.
type Face int

const (
	One Face = 1
	Six Face = 6
)

func (f Face) Valid() bool {
	return f >= One && f <= Six
}

type Token struct {
	Id int
	At Coordinate
}

// Board holds the static tables. It is never mutated after loading.
type Board struct {
	Size        int
	FieldColors map[Field][]Coordinate
	StartFields map[Field][]Coordinate
	Paths       map[Player][]Coordinate
	Dice        Coordinate
}

type Model struct {
	Board  *Board
	Tokens map[Player][]Token
	Face   Face
}
