package models

import (
	"fmt"
	"image"
)

// Channels is the sample count per pixel of an ImageBuffer.
const Channels = 3

// ImageBuffer is a decoded raster in red-green-blue order, 8 bits per
// sample. Pix is row-major with a stride of Channels*Width.
type ImageBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImageBuffer allocates a zeroed buffer.
func NewImageBuffer(width, height int) (*ImageBuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	return &ImageBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}, nil
}

// NewImageBufferFromPix wraps existing RGB samples without copying.
func NewImageBufferFromPix(width, height int, pix []uint8) (*ImageBuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if want := width * height * Channels; len(pix) != want {
		return nil, fmt.Errorf("pixel data has %d bytes, want %d for %dx%d RGB", len(pix), want, width, height)
	}
	return &ImageBuffer{Width: width, Height: height, Pix: pix}, nil
}

func (b *ImageBuffer) Stride() int {
	return b.Width * Channels
}

func (b *ImageBuffer) PixOffset(x, y int) int {
	return y*b.Stride() + x*Channels
}

// RGBAt returns the samples at column x, row y.
func (b *ImageBuffer) RGBAt(x, y int) (r, g, bl uint8) {
	i := b.PixOffset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

func (b *ImageBuffer) SetRGB(x, y int, r, g, bl uint8) {
	i := b.PixOffset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

func (b *ImageBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// SameSize reports whether both buffers have identical dimensions.
func (b *ImageBuffer) SameSize(other *ImageBuffer) bool {
	return other != nil && b.Width == other.Width && b.Height == other.Height
}

func (b *ImageBuffer) Clone() *ImageBuffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &ImageBuffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// ToRGBA converts to an opaque image.RGBA for display.
func (b *ImageBuffer) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(b.Bounds())
	b.CopyToRGBA(dst)
	return dst
}

// CopyToRGBA overwrites dst in place. dst must have the buffer's size.
func (b *ImageBuffer) CopyToRGBA(dst *image.RGBA) {
	for y := 0; y < b.Height; y++ {
		src := b.Pix[y*b.Stride() : (y+1)*b.Stride()]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Width*4]
		for x, j := 0, 0; x < len(src); x, j = x+Channels, j+4 {
			row[j] = src[x]
			row[j+1] = src[x+1]
			row[j+2] = src[x+2]
			row[j+3] = 0xff
		}
	}
}

// FromImage copies any image.Image into a new RGB buffer, dropping alpha.
func FromImage(img image.Image) (*ImageBuffer, error) {
	bounds := img.Bounds()
	buf, err := NewImageBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, bl, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf.SetRGB(x, y, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return buf, nil
}
