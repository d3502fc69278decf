package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
)

// Nine stretches an image to any size keeping its corners unscaled.
// positions are the x/y cut lines of the source image: outer, inner, inner, outer.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	targetPositions     [4][2]float64
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	for axis, origin := range [2]int{n.x, n.y} {
		extent := [2]int{width, height}[axis]
		n.targetPositions[0][axis] = float64(origin)
		n.targetPositions[1][axis] = float64(origin) + n.Scale*float64(n.positions[1][axis]-n.positions[0][axis])
		n.targetPositions[2][axis] = float64(origin+extent) - n.Scale*float64(n.positions[3][axis]-n.positions[2][axis])
		n.targetPositions[3][axis] = float64(origin + extent)
	}
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(
				n.positions[col][0], n.positions[row][1],
				n.positions[col+1][0], n.positions[row+1][1])
			if src.Empty() {
				continue
			}
			dw := n.targetPositions[col+1][0] - n.targetPositions[col][0]
			dh := n.targetPositions[row+1][1] - n.targetPositions[row][1]

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(dw/float64(src.Dx()), dh/float64(src.Dy()))
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
