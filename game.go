package main

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/ludo/game"
	"github.com/zucenko/ludo/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	size    = 50
	padding = 20
	dt      = 1.0 / 60
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

var COLOR_WHITE = HexToF32(0xffffff)
var COLOR_BLACK = HexToF32(0x000000)

var PLAYER_COLORS = map[model.Player]GameColor{
	model.Green:  HexToF32(0x34c759),
	model.Yellow: HexToF32(0xffcc00),
	model.Blue:   HexToF32(0x007aff),
	model.Red:    HexToF32(0xff3b30),
}

var FIELD_COLORS = map[model.Field]GameColor{
	model.GreenField:  PLAYER_COLORS[model.Green],
	model.YellowField: PLAYER_COLORS[model.Yellow],
	model.BlueField:   PLAYER_COLORS[model.Blue],
	model.RedField:    PLAYER_COLORS[model.Red],
	model.WhiteField:  COLOR_WHITE,
}

type GameState int

const (
	SPLASH GameState = iota + 1
	FADING
	PLAYING
	PAUSED
)

func (s GameState) Name() string {
	switch s {
	case SPLASH:
		return "SPLASH"
	case FADING:
		return "FADING"
	case PLAYING:
		return "PLAYING"
	case PAUSED:
		return "PAUSED"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Game struct {
	State      GameState
	Controller *game.Controller
	Board      *model.Board
	Frame      *Nine
	Tweens     map[*gween.Tween]Action
	Pieces     map[PieceKey]*Piece
	Splash     Splash
	// boardAlpha fades the board in after the splash
	boardAlpha float64

	disc, ring, pieceRing, die, dieRim *ebiten.Image
}

var Font font.Face

func loadFont() font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:       50,
		DPI:        dpi,
		SubPixelsX: 100,
		Hinting:    font.HintingFull,
	})
}

func NewGame(c *game.Controller) *Game {
	Font = loadFont()
	frame := newSprite(roundedFrame(24, 10))
	g := &Game{
		State:      SPLASH,
		Controller: c,
		Board:      c.Board(),
		Frame: &Nine{
			images:    frame,
			alpha:     1,
			R:         1, G: 1, B: 1, Scale: .5,
			positions: [4][2]int{{0, 0}, {32, 32}, {96, 96}, {spriteSize, spriteSize}},
		},
		Tweens:    make(map[*gween.Tween]Action),
		Pieces:    make(map[PieceKey]*Piece),
		disc:      newSprite(disc),
		ring:      newSprite(ring(spriteSize / 15.0)),
		pieceRing: newSprite(ring(spriteSize / 6.0)),
		die:       newSprite(roundedSquare(16)),
		dieRim:    newSprite(roundedFrame(16, 12)),
	}
	side := g.Board.Size * size
	g.Frame.SetPosition(padding/2, padding/2)
	g.Frame.SetSize(side+padding, side+padding)
	g.startSplash()
	return g
}

func (g *Game) ScreenSize() (int, int) {
	side := g.Board.Size*size + 2*padding
	return side, side
}

func (g *Game) update(screen *ebiten.Image) error {
	g.runTweens(dt)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if g.State != SPLASH {
		g.syncPieces(g.Controller.Snapshot())
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if e := screen.Fill(color.Black); e != nil {
		log.Printf("%v", e)
	}
	switch g.State {
	case SPLASH:
		g.drawSplash(screen)
	case FADING:
		g.drawSplash(screen)
		g.drawBoard(screen)
	default:
		g.drawBoard(screen)
	}
	ebitenutil.DebugPrintAt(screen, g.State.Name(), 2, 0)
	return nil
}

func (g *Game) togglePause() {
	switch g.State {
	case PLAYING:
		g.Controller.Stop()
		g.State = PAUSED
	case PAUSED:
		g.Controller.Start()
		g.State = PLAYING
	}
}

// cellCenter returns the screen position of the middle of a cell.
func cellCenter(row, col float64) (float64, float64) {
	return padding + col*size + size/2, padding + row*size + size/2
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	a := g.boardAlpha
	for row := 0; row < g.Board.Size; row++ {
		for col := 0; col < g.Board.Size; col++ {
			c := model.Coordinate{Row: row, Col: col}
			x, y := cellCenter(float64(row), float64(col))
			if f, ok := g.Board.StartFieldAt(c); ok {
				drawSprite(screen, g.disc, x, y, size*.9, FIELD_COLORS[f], a)
				drawSprite(screen, g.ring, x, y, size*.9, COLOR_WHITE, a)
			}
			if f, ok := g.Board.FieldAt(c); ok {
				drawSprite(screen, g.disc, x, y, size*.9, FIELD_COLORS[f], a)
				drawSprite(screen, g.ring, x, y, size*.9, COLOR_WHITE, a)
			}
		}
	}
	for _, p := range model.Players {
		for key, piece := range g.Pieces {
			if key.Player != p {
				continue
			}
			x, y := cellCenter(piece.Y, piece.X)
			drawSprite(screen, g.disc, x, y, size/2.5, PLAYER_COLORS[p], a)
			drawSprite(screen, g.pieceRing, x, y, size/2.5, COLOR_BLACK, a)
		}
	}
	g.drawDie(screen, a)

	g.Frame.alpha = a
	g.Frame.Draw(screen)
}

func (g *Game) drawDie(screen *ebiten.Image, a float64) {
	d := g.Board.Dice
	x, y := cellCenter(float64(d.Row), float64(d.Col))
	drawSprite(screen, g.die, x, y, size/1.5, COLOR_BLACK, a)
	drawSprite(screen, g.dieRim, x, y, size/1.4, PLAYER_COLORS[g.Controller.CurrentPlayer()], a)

	pip := size / 9.0
	spread := size / 1.5 / 2 * .6
	for _, o := range pips(g.Controller.DiceFace()) {
		drawSprite(screen, g.disc, x+o[0]*spread, y+o[1]*spread, pip, COLOR_WHITE, a)
	}
}

// pips returns the pip offsets of a face in units of the pip grid.
func pips(f model.Face) [][2]float64 {
	var out [][2]float64
	if f == 1 || f == 3 || f == 5 {
		out = append(out, [2]float64{0, 0})
	}
	if f >= 2 {
		out = append(out, [2]float64{-1, -1}, [2]float64{1, 1})
	}
	if f >= 4 {
		out = append(out, [2]float64{1, -1}, [2]float64{-1, 1})
	}
	if f == 6 {
		out = append(out, [2]float64{-1, 0}, [2]float64{1, 0})
	}
	return out
}
