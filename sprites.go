package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"
)

const spriteSize = 128

// shape reports the coverage of the pixel centred at x,y of a spriteSize square.
type shape func(x, y float64) bool

func disc(x, y float64) bool {
	r := spriteSize / 2.0
	return math.Hypot(x-r, y-r) <= r
}

func ring(width float64) shape {
	return func(x, y float64) bool {
		r := spriteSize / 2.0
		d := math.Hypot(x-r, y-r)
		return d <= r && d >= r-width
	}
}

func roundedSquare(radius float64) shape {
	return func(x, y float64) bool {
		return insideRounded(x, y, 0, spriteSize, radius)
	}
}

func roundedFrame(radius, width float64) shape {
	return func(x, y float64) bool {
		return insideRounded(x, y, 0, spriteSize, radius) &&
			!insideRounded(x, y, width, spriteSize-width, radius-width)
	}
}

func insideRounded(x, y, lo, hi, radius float64) bool {
	if x < lo || y < lo || x > hi || y > hi {
		return false
	}
	cx := math.Min(math.Max(x, lo+radius), hi-radius)
	cy := math.Min(math.Max(y, lo+radius), hi-radius)
	return math.Hypot(x-cx, y-cy) <= radius
}

// newSprite renders a white shape, tinted later through ColorM.
func newSprite(s shape) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, spriteSize, spriteSize))
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			if s(float64(x)+.5, float64(y)+.5) {
				img.Set(x, y, color.White)
			}
		}
	}
	sprite, err := ebiten.NewImageFromImage(img, ebiten.FilterLinear)
	if err != nil {
		log.Fatal(err)
	}
	return sprite
}

// drawSprite draws img centred at cx,cy with the given diameter.
func drawSprite(screen, img *ebiten.Image, cx, cy, diameter float64, c GameColor, alpha float64) {
	w, _ := img.Size()
	scale := diameter / float64(w)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-diameter/2, cy-diameter/2)
	op.ColorM.Scale(c.r, c.g, c.b, alpha)
	screen.DrawImage(img, op)
}
