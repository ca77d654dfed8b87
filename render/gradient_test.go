package render

import (
	"image/color"
	"testing"

	"github.com/milk9111/particlefield/field"
)

var ambientTestStops = []field.GradientStop{
	{Offset: 0, Color: color.NRGBA{R: 107, G: 184, B: 208, A: 255}, Alpha: 0.035},
	{Offset: 0.5, Color: color.NRGBA{R: 74, G: 143, B: 168, A: 255}, Alpha: 0.015},
	{Offset: 1, Color: color.NRGBA{A: 255}, Alpha: 0},
}

func TestBakeRadial(t *testing.T) {
	const size = 16
	img, peak := BakeRadial(GlowStops, size)
	if peak != 1 {
		t.Fatalf("expected peak 1, got %v", peak)
	}

	center := img.NRGBAAt(size/2, size/2)
	edge := img.NRGBAAt(size/2, 0)
	corner := img.NRGBAAt(0, 0)
	if center.A <= edge.A {
		t.Fatalf("alpha should fall off from the centre: centre=%d edge=%d", center.A, edge.A)
	}
	if corner.A != 0 {
		t.Fatalf("corners lie outside the disc, got alpha %d", corner.A)
	}
	if center.R != 0xff || center.G != 0xff || center.B != 0xff {
		t.Fatalf("glow texture should be white, got %v", center)
	}

	faint, faintPeak := BakeRadial(ambientTestStops, size)
	if faintPeak != 0.035 {
		t.Fatalf("expected peak 0.035, got %v", faintPeak)
	}
	if a := faint.NRGBAAt(size/2, size/2).A; a < 200 {
		t.Fatalf("faint gradient should be normalized to near full alpha at the centre, got %d", a)
	}

	_, none := BakeRadial([]field.GradientStop{{Offset: 0, Alpha: 0}}, size)
	if none != 0 {
		t.Fatalf("fully transparent stops should report zero peak")
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 0x6b, G: 0xb8, B: 0xd0, A: 0xff}
	cases := []struct {
		alpha float64
		want  uint16
	}{
		{0, 0},
		{1, 0xffff},
		{2, 0xffff},
		{-1, 0},
		{0.5, 0x7fff},
	}
	for _, tc := range cases {
		got := withAlpha(c, tc.alpha)
		if got.A != tc.want {
			t.Fatalf("alpha %v: expected %#x, got %#x", tc.alpha, tc.want, got.A)
		}
		if got.R != 0x6b6b || got.G != 0xb8b8 || got.B != 0xd0d0 {
			t.Fatalf("colour channels should widen to 16 bits, got %v", got)
		}
	}
}
