package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/particlefield/field"
)

const textureSize = 256

type texture struct {
	img  *ebiten.Image
	peak float64
}

var textures = map[string]texture{}

// radialTexture returns the baked gradient for stops, creating it on first use.
func radialTexture(stops []field.GradientStop) texture {
	key := fmt.Sprint(stops)
	if tex, ok := textures[key]; ok {
		return tex
	}
	img, peak := BakeRadial(stops, textureSize)
	tex := texture{img: ebiten.NewImageFromImage(img), peak: peak}
	textures[key] = tex
	return tex
}
