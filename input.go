package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the per-frame input state the field cares about.
type Input struct {
	// PointerX/Y are the cursor position in screen pixels.
	PointerX float64
	PointerY float64
	// PointerInside is false when the cursor left the window or the window lost focus.
	PointerInside bool
	// Scroll is the document scroll requested this frame, in pixels. Positive scrolls down.
	Scroll float64
	// Top and Bottom jump to either end of the document.
	Top    bool
	Bottom bool
	// MenuPressed is true on the frame the menu key was pressed.
	MenuPressed bool
	// ReseedPressed is true on the frame the reseed key was pressed.
	ReseedPressed bool
	// DebugPressed toggles the stats overlay.
	DebugPressed bool

	wheelStep float64
	viewport  float64
}

func NewInput(wheelStep float64) *Input {
	return &Input{wheelStep: wheelStep}
}

// Update polls the devices. width and height are the current screen size.
func (i *Input) Update(width, height float64) {
	i.viewport = height

	mx, my := ebiten.CursorPosition()
	i.PointerX, i.PointerY = float64(mx), float64(my)
	i.PointerInside = ebiten.IsFocused() &&
		i.PointerX >= 0 && i.PointerY >= 0 && i.PointerX < width && i.PointerY < height

	_, wy := ebiten.Wheel()
	i.Scroll = -wy * i.wheelStep

	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		i.Scroll += i.viewport
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		i.Scroll -= i.viewport
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		i.Scroll += i.wheelStep / 4
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		i.Scroll -= i.wheelStep / 4
	}

	i.Top = inpututil.IsKeyJustPressed(ebiten.KeyHome)
	i.Bottom = inpututil.IsKeyJustPressed(ebiten.KeyEnd)
	i.MenuPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.ReseedPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

func (i *Input) SetWheelStep(step float64) {
	i.wheelStep = step
}
