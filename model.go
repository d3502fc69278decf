package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/ludo/model"
)

const glideSeconds = 0.3

type PieceKey struct {
	Player model.Player
	Id     int
}

// Piece is a token as drawn: its position glides towards the cell of the token.
type Piece struct {
	Player model.Player
	X, Y   float64 // in cells
	Target model.Coordinate
	glide  *gween.Tween
}

// syncPieces moves the drawn pieces towards the tokens of the snapshot.
func (g *Game) syncPieces(s model.Snapshot) {
	for _, p := range model.Players {
		for _, tok := range s.Tokens[p] {
			key := PieceKey{Player: p, Id: tok.Id}
			piece, found := g.Pieces[key]
			if !found {
				g.Pieces[key] = &Piece{
					Player: p,
					X:      float64(tok.At.Col),
					Y:      float64(tok.At.Row),
					Target: tok.At,
				}
				continue
			}
			if piece.Target != tok.At {
				g.glide(piece, tok.At)
			}
		}
	}
}

func (g *Game) glide(piece *Piece, to model.Coordinate) {
	if piece.glide != nil {
		delete(g.Tweens, piece.glide)
	}
	fromX, fromY := piece.X, piece.Y
	toX, toY := float64(to.Col), float64(to.Row)
	t := gween.New(0, 1, glideSeconds, ease.OutQuad)
	action := Action{
		onChange: func(v float32) {
			piece.X = fromX + (toX-fromX)*float64(v)
			piece.Y = fromY + (toY-fromY)*float64(v)
		},
	}
	action.addOnFinish(func() { piece.glide = nil })
	piece.Target = to
	piece.glide = t
	g.Tweens[t] = action
}
