package models

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageBufferRejectsEmptyDimensions(t *testing.T) {
	_, err := NewImageBuffer(0, 5)
	assert.Error(t, err)

	_, err = NewImageBufferFromPix(2, 2, make([]uint8, 11))
	assert.Error(t, err)
}

func TestRGBAccessAndRGBA(t *testing.T) {
	buf, err := NewImageBuffer(3, 2)
	require.NoError(t, err)

	buf.SetRGB(2, 1, 10, 20, 30)
	r, g, b := buf.RGBAt(2, 1)
	assert.Equal(t, []uint8{10, 20, 30}, []uint8{r, g, b})

	rgba := buf.ToRGBA()
	assert.Equal(t, buf.Bounds(), rgba.Bounds())
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 0xff}, rgba.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{A: 0xff}, rgba.RGBAAt(0, 0))
}

func TestCopyToRGBAOverwritesInPlace(t *testing.T) {
	buf, err := NewImageBuffer(2, 2)
	require.NoError(t, err)
	buf.SetRGB(0, 0, 1, 2, 3)

	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	dst.SetRGBA(0, 0, color.RGBA{R: 99, A: 7})
	pix := &dst.Pix[0]

	buf.CopyToRGBA(dst)
	assert.Same(t, pix, &dst.Pix[0])
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 0xff}, dst.RGBAAt(0, 0))
}

func TestCloneIsIndependent(t *testing.T) {
	buf, err := NewImageBuffer(1, 1)
	require.NoError(t, err)
	clone := buf.Clone()
	clone.SetRGB(0, 0, 5, 5, 5)

	r, _, _ := buf.RGBAt(0, 0)
	assert.Zero(t, r)
	assert.True(t, buf.SameSize(clone))
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	buf, err := FromImage(src)
	require.NoError(t, err)
	r, g, b := buf.RGBAt(1, 0)
	assert.Equal(t, []uint8{200, 100, 50}, []uint8{r, g, b})
}
