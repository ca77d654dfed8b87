// Package host holds the pieces shared by the desktop and terminal programs that drive
// a field: the per-frame scheduler, a virtual scrollable document and the scripted
// autoscroll driver.
package host

import (
	"github.com/milk9111/particlefield/common"
	"github.com/milk9111/particlefield/field"
)

// Document is a virtual page the host scrolls through. Its height is a whole number of
// viewports so scroll progress behaves like a long web page.
type Document struct {
	pages    float64
	viewport float64
	offset   float64
}

func NewDocument(pages float64) *Document {
	if pages < 1 {
		pages = 1
	}
	return &Document{pages: pages}
}

func (d *Document) Height() float64 {
	return d.viewport * d.pages
}

func (d *Document) Offset() float64 {
	return d.offset
}

func (d *Document) maxOffset() float64 {
	return max(d.Height()-d.viewport, 0)
}

// SetViewport resizes the viewport, keeping the same relative scroll position.
func (d *Document) SetViewport(h float64) {
	progress := d.Progress()
	d.viewport = h
	d.offset = progress * d.maxOffset()
}

// SetPages changes the document length, keeping the same relative scroll position.
func (d *Document) SetPages(pages float64) {
	if pages < 1 {
		pages = 1
	}
	progress := d.Progress()
	d.pages = pages
	d.offset = progress * d.maxOffset()
}

// ScrollBy moves the offset by dy, clamped to the document.
func (d *Document) ScrollBy(dy float64) {
	d.ScrollTo(d.offset + dy)
}

func (d *Document) ScrollTo(offset float64) {
	d.offset = common.Clamp(offset, 0, d.maxOffset())
}

func (d *Document) Progress() float64 {
	return field.ScrollProgress(d.offset, d.Height(), d.viewport)
}

// Apply forwards the scroll position to f.
func (d *Document) Apply(f *field.Field) {
	f.SetScroll(d.offset, d.Height(), d.viewport)
}
