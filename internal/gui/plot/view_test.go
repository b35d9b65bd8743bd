package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowResetsOnlyOnNewSize(t *testing.T) {
	var v View

	require.True(t, v.Show(40, 30))
	assert.Equal(t, ExtentOf(40, 30), v.Limits())

	v.ZoomCenter(2)
	v.Pan(3, -1)
	zoomed := v.Limits()
	require.NotEqual(t, ExtentOf(40, 30), zoomed)

	assert.False(t, v.Show(40, 30))
	assert.Equal(t, zoomed, v.Limits())

	assert.True(t, v.Show(10, 20))
	assert.Equal(t, ExtentOf(10, 20), v.Limits())
}

func TestExtentPutsOriginTopLeft(t *testing.T) {
	l := ExtentOf(4, 3)
	assert.Equal(t, Limits{XMin: -0.5, XMax: 3.5, YTop: -0.5, YBottom: 2.5}, l)
	assert.Equal(t, 4.0, l.Width())
	assert.Equal(t, 3.0, l.Height())
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	var v View
	v.Show(100, 100)

	v.ZoomAt(2, 20, 30)
	l := v.Limits()
	assert.InDelta(t, 50, l.Width(), 1e-9)
	assert.InDelta(t, 20-(20+0.5)/2, l.XMin, 1e-9)
	assert.InDelta(t, 30-(30+0.5)/2, l.YTop, 1e-9)

	v.Home()
	assert.Equal(t, ExtentOf(100, 100), v.Limits())
}

func TestZoomStopsAtMinimumSpan(t *testing.T) {
	var v View
	v.Show(4, 4)
	for i := 0; i < 20; i++ {
		v.ZoomCenter(zoomStep)
	}
	assert.GreaterOrEqual(t, v.Limits().Width(), minSpan)
}

func TestOperationsBeforeShowAreNoops(t *testing.T) {
	var v View
	v.ZoomCenter(2)
	v.Pan(1, 1)
	v.Home()
	assert.Equal(t, Limits{}, v.Limits())
	assert.False(t, v.Shown())
}

func TestFitCentresWithEqualAspect(t *testing.T) {
	var v View
	v.Show(100, 50)

	tr := v.Fit(200, 200)
	assert.InDelta(t, 2, tr.Scale, 1e-9)
	assert.InDelta(t, 0, tr.OffX, 1e-9)
	assert.InDelta(t, 50, tr.OffY, 1e-9)

	x, y := tr.ToData(tr.ToScreen(12.25, 7.5))
	assert.InDelta(t, 12.25, x, 1e-9)
	assert.InDelta(t, 7.5, y, 1e-9)
}

func TestPixelAtRoundsAndRejectsOutside(t *testing.T) {
	var v View
	v.Show(10, 10)
	tr := v.Fit(100, 100)

	// screen 5 is the centre of pixel 0
	assert.Equal(t, &PixelPos{X: 0, Y: 0}, tr.PixelAt(5, 5))
	assert.Equal(t, &PixelPos{X: 3, Y: 9}, tr.PixelAt(37, 96))

	wide := v.Fit(200, 100)
	assert.Nil(t, wide.PixelAt(10, 50), "left letterbox is outside the data area")
	assert.NotNil(t, wide.PixelAt(100, 50))
}

func TestFitDegenerateArea(t *testing.T) {
	var v View
	v.Show(10, 10)
	tr := v.Fit(0, 0)
	assert.False(t, tr.Contains(0, 0))
	assert.Nil(t, tr.PixelAt(0, 0))
}
