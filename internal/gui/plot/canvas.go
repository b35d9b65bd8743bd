package plot

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"orthoview/internal/logger"
	"orthoview/internal/models"
)

var background = color.RGBA{R: 0xe9, G: 0xe9, B: 0xe9, A: 0xff}

// Canvas displays one image with zoom and pan. Showing an image of the
// same size as the current one updates the pixels in place and keeps the
// view; a different size resets the view to the full image.
type Canvas struct {
	widget.BaseWidget

	view    View
	surface *image.RGBA
	raster  *fynecanvas.Raster
	logger  logger.Logger

	lastClick *PixelPos

	onClick  func(pos *PixelPos)
	onStatus func(msg string)
}

func NewCanvas(log logger.Logger) *Canvas {
	if log == nil {
		log = logger.Nop{}
	}
	c := &Canvas{logger: log}
	c.raster = fynecanvas.NewRaster(c.draw)
	c.raster.ScaleMode = fynecanvas.ImageScalePixels
	c.ExtendBaseWidget(c)
	return c
}

func (c *Canvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

func (c *Canvas) MinSize() fyne.Size {
	return fyne.NewSize(200, 150)
}

// Show displays buf. The canvas keeps its own copy of the pixels.
func (c *Canvas) Show(buf *models.ImageBuffer) {
	reset := c.view.Show(buf.Width, buf.Height)

	if reset || c.surface == nil {
		c.surface = buf.ToRGBA()
		c.logger.Debug("Canvas", "surface replaced", map[string]interface{}{
			"width":  buf.Width,
			"height": buf.Height,
		})
	} else {
		buf.CopyToRGBA(c.surface)
	}

	c.viewChanged()
}

// HasImage reports whether Show has been called.
func (c *Canvas) HasImage() bool {
	return c.surface != nil
}

func (c *Canvas) Limits() Limits {
	return c.view.Limits()
}

func (c *Canvas) Home() {
	c.view.Home()
	c.viewChanged()
}

func (c *Canvas) ZoomIn() {
	c.view.ZoomCenter(zoomStep)
	c.viewChanged()
}

func (c *Canvas) ZoomOut() {
	c.view.ZoomCenter(1 / zoomStep)
	c.viewChanged()
}

// OnClick subscribes to pointer clicks. pos is nil outside the plotted
// area.
func (c *Canvas) OnClick(handler func(pos *PixelPos)) {
	c.onClick = handler
}

// OnStatus subscribes to raw coordinate messages from pointer motion.
func (c *Canvas) OnStatus(handler func(msg string)) {
	c.onStatus = handler
}

// LastClick returns the most recent click position, nil if the click
// missed the plotted area or none happened yet.
func (c *Canvas) LastClick() *PixelPos {
	return c.lastClick
}

func (c *Canvas) transform() Transform {
	size := c.Size()
	return c.view.Fit(float64(size.Width), float64(size.Height))
}

// PixelAt maps a widget position onto the nearest image pixel.
func (c *Canvas) PixelAt(pos fyne.Position) *PixelPos {
	if !c.view.Shown() {
		return nil
	}
	return c.transform().PixelAt(float64(pos.X), float64(pos.Y))
}

func (c *Canvas) Tapped(ev *fyne.PointEvent) {
	c.lastClick = c.PixelAt(ev.Position)
	if c.onClick != nil {
		c.onClick(c.lastClick)
	}
}

func (c *Canvas) Dragged(ev *fyne.DragEvent) {
	t := c.transform()
	if t.Scale <= 0 {
		return
	}
	c.view.Pan(-float64(ev.Dragged.DX)/t.Scale, -float64(ev.Dragged.DY)/t.Scale)
	c.viewChanged()
}

func (c *Canvas) DragEnd() {}

func (c *Canvas) Scrolled(ev *fyne.ScrollEvent) {
	t := c.transform()
	if t.Scale <= 0 || ev.Scrolled.DY == 0 {
		return
	}
	factor := zoomStep
	if ev.Scrolled.DY < 0 {
		factor = 1 / zoomStep
	}
	x, y := t.ToData(float64(ev.Position.X), float64(ev.Position.Y))
	c.view.ZoomAt(factor, x, y)
	c.viewChanged()
}

func (c *Canvas) MouseIn(ev *desktop.MouseEvent) {
	c.MouseMoved(ev)
}

func (c *Canvas) MouseMoved(ev *desktop.MouseEvent) {
	if c.onStatus == nil {
		return
	}
	c.onStatus(c.statusAt(ev.Position))
}

func (c *Canvas) MouseOut() {
	if c.onStatus != nil {
		c.onStatus("")
	}
}

func (c *Canvas) statusAt(pos fyne.Position) string {
	if !c.view.Shown() {
		return ""
	}
	t := c.transform()
	px, py := float64(pos.X), float64(pos.Y)
	if !t.Contains(px, py) {
		return ""
	}
	x, y := t.ToData(px, py)

	var rgb []uint8
	if p := t.PixelAt(px, py); p != nil && c.surface != nil && image.Pt(p.X, p.Y).In(c.surface.Bounds()) {
		v := c.surface.RGBAAt(p.X, p.Y)
		rgb = []uint8{v.R, v.G, v.B}
	}
	return coordinateMessage(x, y, rgb)
}

func (c *Canvas) viewChanged() {
	c.raster.Refresh()
}

// draw renders the visible part of the surface into a w×h pixel image.
func (c *Canvas) draw(w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	if c.surface == nil {
		return dst
	}

	t := c.view.Fit(float64(w), float64(h))
	if t.Scale <= 0 {
		return dst
	}
	x0, y0, x1, y1 := t.Box()
	box := image.Rect(int(x0), int(y0), int(x1+0.5), int(y1+0.5)).Intersect(dst.Bounds())
	target, ok := dst.SubImage(box).(*image.RGBA)
	if !ok || box.Empty() {
		return dst
	}

	// source pixel i spans [i, i+1) while its data coordinate is i
	l := t.Limits
	s2d := f64.Aff3{
		t.Scale, 0, t.OffX - (l.XMin+0.5)*t.Scale,
		0, t.Scale, t.OffY - (l.YTop+0.5)*t.Scale,
	}
	draw.NearestNeighbor.Transform(target, s2d, c.surface, c.surface.Bounds(), draw.Src, nil)
	return dst
}
