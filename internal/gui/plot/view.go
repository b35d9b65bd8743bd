// Package plot provides the zoomable image canvas and its navigation
// toolbar.
package plot

import "math"

const (
	// zoomStep is applied per wheel notch or toolbar press.
	zoomStep = 1.25
	// minSpan keeps at least this many pixels visible when zooming in.
	minSpan = 2.0
)

// Limits are view bounds in data coordinates. The row axis is inverted:
// YTop is numerically smaller than YBottom.
type Limits struct {
	XMin, XMax    float64
	YTop, YBottom float64
}

func (l Limits) Width() float64  { return l.XMax - l.XMin }
func (l Limits) Height() float64 { return l.YBottom - l.YTop }

// ExtentOf is the data extent of a w×h image: pixel centres sit on
// integer coordinates and (0,0) is the top-left pixel.
func ExtentOf(w, h int) Limits {
	return Limits{
		XMin:    -0.5,
		XMax:    float64(w) - 0.5,
		YTop:    -0.5,
		YBottom: float64(h) - 0.5,
	}
}

// View tracks the displayed image size and the current view limits.
type View struct {
	width, height int
	limits        Limits
	shown         bool
}

// Show registers an image of w×h. The limits are reset to the full
// extent on the first call and whenever the size changes; otherwise the
// current zoom and pan survive. It reports whether a reset happened.
func (v *View) Show(w, h int) bool {
	if v.shown && w == v.width && h == v.height {
		return false
	}
	v.width, v.height = w, h
	v.shown = true
	v.limits = ExtentOf(w, h)
	return true
}

func (v *View) Shown() bool { return v.shown }

func (v *View) Size() (int, int) { return v.width, v.height }

func (v *View) Limits() Limits { return v.limits }

func (v *View) Extent() Limits { return ExtentOf(v.width, v.height) }

// Home restores the full extent.
func (v *View) Home() {
	if v.shown {
		v.limits = v.Extent()
	}
}

// ZoomAt scales the view around the data point (x, y), which keeps its
// screen position. factor > 1 zooms in.
func (v *View) ZoomAt(factor, x, y float64) {
	if !v.shown || factor <= 0 {
		return
	}
	l := v.limits
	if factor > 1 && math.Min(l.Width(), l.Height())/factor < minSpan {
		return
	}
	v.limits = Limits{
		XMin:    x - (x-l.XMin)/factor,
		XMax:    x + (l.XMax-x)/factor,
		YTop:    y - (y-l.YTop)/factor,
		YBottom: y + (l.YBottom-y)/factor,
	}
}

// ZoomCenter zooms around the middle of the current view.
func (v *View) ZoomCenter(factor float64) {
	l := v.limits
	v.ZoomAt(factor, (l.XMin+l.XMax)/2, (l.YTop+l.YBottom)/2)
}

// Pan shifts the view by dx, dy data units.
func (v *View) Pan(dx, dy float64) {
	if !v.shown {
		return
	}
	v.limits.XMin += dx
	v.limits.XMax += dx
	v.limits.YTop += dy
	v.limits.YBottom += dy
}

// Transform maps between widget and data coordinates for one layout.
type Transform struct {
	Scale      float64
	OffX, OffY float64
	Limits     Limits
}

// Fit places the current limits in a w×h area with equal aspect,
// centred.
func (v *View) Fit(w, h float64) Transform {
	l := v.limits
	if w <= 0 || h <= 0 || l.Width() <= 0 || l.Height() <= 0 {
		return Transform{Limits: l}
	}
	scale := math.Min(w/l.Width(), h/l.Height())
	return Transform{
		Scale:  scale,
		OffX:   (w - l.Width()*scale) / 2,
		OffY:   (h - l.Height()*scale) / 2,
		Limits: l,
	}
}

func (t Transform) ToData(px, py float64) (x, y float64) {
	return (px-t.OffX)/t.Scale + t.Limits.XMin, (py-t.OffY)/t.Scale + t.Limits.YTop
}

func (t Transform) ToScreen(x, y float64) (px, py float64) {
	return (x-t.Limits.XMin)*t.Scale + t.OffX, (y-t.Limits.YTop)*t.Scale + t.OffY
}

// Box is the widget-space rectangle covered by the limits.
func (t Transform) Box() (x0, y0, x1, y1 float64) {
	return t.OffX, t.OffY, t.OffX + t.Limits.Width()*t.Scale, t.OffY + t.Limits.Height()*t.Scale
}

// Contains reports whether a widget position lands in the plotted area.
func (t Transform) Contains(px, py float64) bool {
	if t.Scale <= 0 {
		return false
	}
	x0, y0, x1, y1 := t.Box()
	return px >= x0 && px <= x1 && py >= y0 && py <= y1
}

// PixelPos is an integer pixel coordinate.
type PixelPos struct {
	X, Y int
}

// PixelAt rounds the data position under (px, py) to the nearest pixel.
// It returns nil outside the plotted area.
func (t Transform) PixelAt(px, py float64) *PixelPos {
	if !t.Contains(px, py) {
		return nil
	}
	x, y := t.ToData(px, py)
	return &PixelPos{X: int(math.RoundToEven(x)), Y: int(math.RoundToEven(y))}
}
