package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

const title = "Ludo Game"

// Splash is the title shown before the board.
type Splash struct {
	Title        *ebiten.Image
	scale, alpha float64
}

func prepareTextImage(s string) *ebiten.Image {
	width := font.MeasureString(Font, s).Ceil() + 10
	image, err := ebiten.NewImage(width, 70, ebiten.FilterLinear)
	if err != nil {
		log.Fatal(err)
	}
	text.Draw(image, s, Font, 5, 55, color.White)
	return image
}

// startSplash grows and fades in the title, then after two seconds fades
// the board in and starts the turns.
func (g *Game) startSplash() {
	g.Splash = Splash{Title: prepareTextImage(title), scale: .8, alpha: .4}

	grow := gween.New(0, 1, 2.5, ease.InQuad)
	g.Tweens[grow] = Action{
		onChange: func(v float32) {
			g.Splash.scale = .8 + .2*float64(v)
			g.Splash.alpha = .4 + .6*float64(v)
		},
	}

	wait := Action{}
	wait.addOnFinish(func() { g.State = FADING })
	fade := wait.next(gween.New(0, 1, .5, ease.OutQuad))
	fade.onChange = func(v float32) { g.boardAlpha = float64(v) }
	fade.addOnFinish(func() {
		g.State = PLAYING
		g.Controller.Start()
	})
	g.Tweens[gween.New(0, 1, 2, ease.Linear)] = wait
}

func (g *Game) drawSplash(screen *ebiten.Image) {
	w, h := g.Splash.Title.Size()
	sw, sh := g.ScreenSize()
	s := g.Splash.scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(sw)/2, float64(sh)/2)
	op.ColorM.Scale(1, 1, 1, g.Splash.alpha*(1-g.boardAlpha))
	screen.DrawImage(g.Splash.Title, op)
}
