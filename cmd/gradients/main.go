// Command gradients previews the baked radial textures used by the window renderer,
// or writes them out as PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/particlefield/field"
	"github.com/milk9111/particlefield/render"
)

const (
	screenWidth  = 800
	screenHeight = 420
	textureSize  = 256
)

type sample struct {
	name string
	img  *image.NRGBA
	peak float64
	tex  *ebiten.Image
}

type Game struct {
	samples    []sample
	background color.NRGBA
	normalized bool
}

func bakeAll() []sample {
	sets := []struct {
		name  string
		stops []field.GradientStop
	}{
		{"ambient", field.AmbientStops},
		{"glow", render.GlowStops},
	}
	out := make([]sample, 0, len(sets))
	for _, s := range sets {
		img, peak := render.BakeRadial(s.stops, textureSize)
		out = append(out, sample{name: s.name, img: img, peak: peak})
	}
	return out
}

func writePNG(dir string, s sample) error {
	path := filepath.Join(dir, s.name+".png")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gradients: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, s.img); err != nil {
		return fmt.Errorf("gradients: encode %s: %w", path, err)
	}
	return nil
}

func (g *Game) Update() error {
	g.normalized = ebiten.IsKeyPressed(ebiten.KeyN)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	for i := range g.samples {
		s := &g.samples[i]
		if s.tex == nil {
			s.tex = ebiten.NewImageFromImage(s.img)
		}
		x := float64(40 + i*(textureSize+100))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 100)
		if !g.normalized {
			op.ColorScale.ScaleAlpha(float32(s.peak))
		}
		screen.DrawImage(s.tex, op)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  peak %.3f", s.name, s.peak), int(x), 80)
	}
	ebitenutil.DebugPrint(screen, "hold N to view normalized alpha")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	out := flag.String("out", "", "write PNGs to this directory and exit")
	flag.Parse()

	samples := bakeAll()
	if *out != "" {
		if err := os.MkdirAll(*out, 0o755); err != nil {
			log.Fatal(err)
		}
		for _, s := range samples {
			if err := writePNG(*out, s); err != nil {
				log.Fatal(err)
			}
		}
		return
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("gradients")
	game := &Game{samples: samples, background: color.NRGBA{R: 0x0d, G: 0x1a, B: 0x20, A: 0xff}}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
