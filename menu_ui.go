package main

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"sync"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/particlefield/common"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyText puts s on the system clipboard. The clipboard is initialized on first use
// because it is unavailable on some systems.
func copyText(s string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return clipboardErr
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

// NewMenuUI builds the overlay opened with Escape. The animation keeps running
// behind it.
func NewMenuUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x1b, G: 0x33, B: 0x3d, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x2a, G: 0x4f, B: 0x5e, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	textColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("particlefield", &face, textColor),
		widget.TextOpts.WidgetOpts(center),
	)
	status := widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("seed %d", g.app.Seed()), &face, color.NRGBA{R: 0x6b, G: 0xb8, B: 0xd0, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
				status.Label = g.status
			}),
		)
	}

	resumeBtn := button("Resume", func() {
		g.menuOpen = false
		g.status = fmt.Sprintf("seed %d", g.app.Seed())
	})
	reseedBtn := button("Reseed", g.reseed)
	copyBtn := button("Copy seed", func() {
		seed := strconv.FormatInt(g.app.Seed(), 10)
		if err := copyText(seed); err != nil {
			log.Printf("clipboard: %v", err)
			g.status = "clipboard unavailable"
			return
		}
		g.status = fmt.Sprintf("copied seed %s", seed)
	})
	quitBtn := button("Quit", func() {
		g.quit = true
	})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/4, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(status)
	panel.AddChild(resumeBtn)
	panel.AddChild(reseedBtn)
	panel.AddChild(copyBtn)
	panel.AddChild(quitBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
