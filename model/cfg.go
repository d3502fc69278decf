package model

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed board.txt
var defaultBoard string

var entries = map[rune]Player{'1': Green, '2': Red, '3': Blue, '4': Yellow}
var homes = map[rune]Player{'g': Green, 'r': Red, 'b': Blue, 'y': Yellow}
var starts = map[rune]Player{'G': Green, 'R': Red, 'B': Blue, 'Y': Yellow}

// Load reads the board at path, or the built in board when path is empty.
func Load(path string) (*Board, error) {
	if path == "" {
		return read(strings.NewReader(defaultBoard))
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board %s: %w", path, err)
	}
	defer file.Close()
	b, err := read(file)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", path, err)
	}
	return b, nil
}

// Default returns the built in 11x11 board.
func Default() *Board {
	b, err := read(strings.NewReader(defaultBoard))
	if err != nil {
		panic(err)
	}
	return b
}

func read(reader io.Reader) (*Board, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	b := &Board{
		FieldColors: make(map[Field][]Coordinate),
		StartFields: make(map[Field][]Coordinate),
		Paths:       make(map[Player][]Coordinate),
	}
	track := make(map[Coordinate]bool)
	entryCells := make(map[Player]Coordinate)
	dice := 0
	row := 0
	width := -1

	for scanner.Scan() {
		s := strings.TrimRight(scanner.Text(), " \t\r")
		if s == "" {
			continue
		}
		col := 0
		for i, char := range []rune(s) {
			if i%2 == 1 {
				// separator
				if char != ' ' {
					return nil, fmt.Errorf("row %d: expected space at %d, got %q", row, i, char)
				}
				continue
			}
			c := Coordinate{Row: row, Col: col}
			switch {
			case char == '.':
			case char == 'o':
				track[c] = true
				b.FieldColors[WhiteField] = append(b.FieldColors[WhiteField], c)
			case char == 'D':
				b.Dice = c
				dice++
			case entries[char] != 0:
				p := entries[char]
				if _, dup := entryCells[p]; dup {
					return nil, fmt.Errorf("row %d: second entry for %s", row, p.Name())
				}
				track[c] = true
				entryCells[p] = c
				b.FieldColors[p.Field()] = append(b.FieldColors[p.Field()], c)
			case homes[char] != 0:
				f := homes[char].Field()
				b.FieldColors[f] = append(b.FieldColors[f], c)
			case starts[char] != 0:
				f := starts[char].Field()
				b.StartFields[f] = append(b.StartFields[f], c)
			default:
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", row, col, char)
			}
			col++
		}
		if width == -1 {
			width = col
		} else if col != width {
			return nil, fmt.Errorf("row %d: %d cells, want %d", row, col, width)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if row == 0 || row != width {
		return nil, fmt.Errorf("board must be square, got %dx%d", row, width)
	}
	b.Size = row
	if dice != 1 {
		return nil, fmt.Errorf("want exactly one die cell, got %d", dice)
	}
	for _, p := range Players {
		if _, ok := entryCells[p]; !ok {
			return nil, fmt.Errorf("missing entry for %s", p.Name())
		}
		if len(b.StartFields[p.Field()]) == 0 {
			return nil, fmt.Errorf("missing start area for %s", p.Name())
		}
	}

	center := Coordinate{Row: b.Size / 2, Col: b.Size / 2}
	ring, err := trace(track, entryCells[Green], center)
	if err != nil {
		return nil, err
	}
	for _, p := range Players {
		b.Paths[p] = rotate(ring, entryCells[p])
	}
	return b, nil
}

// trace walks the closed track starting at from. The first step goes
// clockwise around center, every later step continues to the neighbour not
// just visited.
func trace(track map[Coordinate]bool, from, center Coordinate) ([]Coordinate, error) {
	for c := range track {
		if n := len(neighbours(track, c)); n != 2 {
			return nil, fmt.Errorf("track cell %v has %d neighbours, want 2", c, n)
		}
	}
	var next Coordinate
	found := false
	for _, n := range neighbours(track, from) {
		if clockwise(center, from, n) {
			next = n
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("no clockwise step from %v", from)
	}

	ring := []Coordinate{from}
	prev := from
	cur := next
	for cur != from {
		if len(ring) > len(track) {
			return nil, fmt.Errorf("track does not close at %v", from)
		}
		ring = append(ring, cur)
		ns := neighbours(track, cur)
		step := ns[0]
		if step == prev {
			step = ns[1]
		}
		prev, cur = cur, step
	}
	if len(ring) != len(track) {
		return nil, fmt.Errorf("track loop covers %d of %d cells", len(ring), len(track))
	}
	return ring, nil
}

func neighbours(track map[Coordinate]bool, c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 2)
	for _, d := range [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		n := Coordinate{Row: c.Row + d[0], Col: c.Col + d[1]}
		if track[n] {
			out = append(out, n)
		}
	}
	return out
}

// clockwise reports whether stepping from a to b turns clockwise around
// center on screen, rows growing downwards.
func clockwise(center, a, b Coordinate) bool {
	rx, ry := a.Col-center.Col, a.Row-center.Row
	sx, sy := b.Col-a.Col, b.Row-a.Row
	return rx*sy-ry*sx > 0
}

func rotate(ring []Coordinate, first Coordinate) []Coordinate {
	start := 0
	for i, c := range ring {
		if c == first {
			start = i
			break
		}
	}
	out := make([]Coordinate, 0, len(ring))
	out = append(out, ring[start:]...)
	return append(out, ring[:start]...)
}
