package plot

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orthoview/internal/models"
)

func solid(t *testing.T, w, h int, r, g, b uint8) *models.ImageBuffer {
	t.Helper()
	buf, err := models.NewImageBuffer(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.SetRGB(x, y, r, g, b)
		}
	}
	return buf
}

func newTestCanvas(t *testing.T) *Canvas {
	t.Helper()
	test.NewTempApp(t)
	c := NewCanvas(nil)
	c.Resize(fyne.NewSize(100, 100))
	return c
}

func TestCanvasSameSizeKeepsViewAndSurface(t *testing.T) {
	c := newTestCanvas(t)

	c.Show(solid(t, 10, 10, 1, 2, 3))
	surface := c.surface
	c.ZoomIn()
	zoomed := c.Limits()

	c.Show(solid(t, 10, 10, 9, 8, 7))
	assert.Same(t, surface, c.surface)
	assert.Equal(t, zoomed, c.Limits())
	assert.Equal(t, color.RGBA{R: 9, G: 8, B: 7, A: 0xff}, c.surface.RGBAAt(4, 4))
}

func TestCanvasNewSizeResetsView(t *testing.T) {
	c := newTestCanvas(t)

	c.Show(solid(t, 10, 10, 1, 2, 3))
	c.ZoomIn()
	c.Show(solid(t, 20, 5, 1, 2, 3))

	assert.Equal(t, ExtentOf(20, 5), c.Limits())
	assert.Equal(t, 20, c.surface.Bounds().Dx())
}

func TestCanvasClickPositions(t *testing.T) {
	c := newTestCanvas(t)

	var got []*PixelPos
	c.OnClick(func(pos *PixelPos) { got = append(got, pos) })

	c.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 10)})
	assert.Nil(t, c.LastClick(), "no image yet")

	c.Show(solid(t, 10, 10, 0, 0, 0))
	c.Tapped(&fyne.PointEvent{Position: fyne.NewPos(25, 74)})
	require.NotNil(t, c.LastClick())
	assert.Equal(t, PixelPos{X: 2, Y: 7}, *c.LastClick())
	assert.Len(t, got, 2)
}

func TestCanvasClickOutsideDataArea(t *testing.T) {
	c := newTestCanvas(t)
	c.Resize(fyne.NewSize(200, 100))
	c.Show(solid(t, 10, 10, 0, 0, 0))

	c.Tapped(&fyne.PointEvent{Position: fyne.NewPos(5, 50)})
	assert.Nil(t, c.LastClick())
}

func TestCanvasStatusMessages(t *testing.T) {
	c := newTestCanvas(t)
	tb := NewNavigationToolbar(c)

	c.Show(solid(t, 10, 10, 200, 100, 50))
	c.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(55, 25)}})
	assert.Equal(t, "x = 5.00\ny = 2.00", tb.Message())

	c.MouseOut()
	assert.Equal(t, "", tb.Message())
}

func TestCanvasDragPansAndScrollZooms(t *testing.T) {
	c := newTestCanvas(t)
	c.Show(solid(t, 10, 10, 0, 0, 0))

	c.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(10, 0)})
	assert.InDelta(t, -1.5, c.Limits().XMin, 1e-9)

	c.Home()
	c.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 50)},
		Scrolled:   fyne.NewDelta(0, 1),
	})
	assert.Less(t, c.Limits().Width(), 10.0)
}

func TestCanvasDraw(t *testing.T) {
	c := newTestCanvas(t)

	empty := c.draw(20, 10)
	assert.Equal(t, background, empty.At(5, 5))

	c.Show(solid(t, 2, 2, 10, 20, 30))
	out := c.draw(20, 10)
	assert.Equal(t, background, out.At(2, 5), "letterbox")
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 0xff}, out.At(10, 5))
}
