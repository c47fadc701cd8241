// Command hexline is a standalone viewer for hex line drawing: left click
// picks the start cell, right click the end cell, and the cells of the line
// between them are highlighted.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/colornames"

	"github.com/milk9111/hexfield/asset"
	"github.com/milk9111/hexfield/hex"
)

const (
	screenWidth  = 960
	screenHeight = 720
)

type Game struct {
	size    int
	scale   float64
	outline []cp.Vector

	start, end hex.Cube
	line       map[hex.Cube]struct{}
	log        zerolog.Logger
}

func NewGame(size int, scale float64, logger zerolog.Logger) (*Game, error) {
	mesh, err := asset.HexTileMesh(1, 1)
	if err != nil {
		return nil, err
	}
	g := &Game{
		size:    size,
		scale:   scale,
		outline: mesh.Outline,
		start:   hex.FromOffset(1, 1),
		end:     hex.FromOffset(float64(size-2), float64(size-2)),
		log:     logger,
	}
	g.retrace()
	return g, nil
}

func (g *Game) retrace() {
	g.line = make(map[hex.Cube]struct{})
	for c := range hex.Line(g.start, g.end) {
		g.line[c] = struct{}{}
	}
	g.log.Debug().Stringer("start", g.start).Stringer("end", g.end).Int("cells", len(g.line)).Msg("line")
}

func (g *Game) toScreen(x, y float64) (float32, float32) {
	return float32(g.scale + x*g.scale), float32(g.scale + y*g.scale)
}

func (g *Game) Update() error {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	cell := hex.PickCell(float64(mx)/g.scale-1, float64(my)/g.scale-1)
	if left {
		g.start = cell
	} else {
		g.end = cell
	}
	g.retrace()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			c := hex.FromOffset(float64(col), float64(row))
			clr := color.Color(colornames.Slategray)
			switch {
			case c == g.start:
				clr = colornames.Lime
			case c == g.end:
				clr = colornames.Orangered
			case g.onLine(c):
				clr = colornames.Gold
			}
			g.drawCell(screen, c, clr)
		}
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s -> %s  distance %d  cells %d",
		g.start, g.end, hex.Distance(g.start, g.end), len(g.line)), 8, 4)
}

func (g *Game) onLine(c hex.Cube) bool {
	_, ok := g.line[c]
	return ok
}

func (g *Game) drawCell(screen *ebiten.Image, c hex.Cube, clr color.Color) {
	cx, cy := c.ToScreen()
	for i := range g.outline {
		a := g.outline[i]
		b := g.outline[(i+1)%len(g.outline)]
		x0, y0 := g.toScreen(cx+a.X*0.95, cy+a.Y*0.95)
		x1, y1 := g.toScreen(cx+b.X*0.95, cy+b.Y*0.95)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	size := flag.Int("size", 15, "field edge length in cells")
	scale := flag.Float64("scale", 40, "tile width in pixels")
	verbose := flag.Bool("v", false, "log every traced line")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).Level(level).With().Timestamp().Logger()

	if *size < 3 {
		log.Fatal().Int("size", *size).Msg("field too small")
	}
	game, err := NewGame(*size, *scale, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("create viewer")
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("hexline")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
