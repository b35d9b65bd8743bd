package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orthoview/internal/models"
)

func sampleBuffer(t *testing.T) *models.ImageBuffer {
	t.Helper()
	buf, err := models.NewImageBuffer(5, 3)
	require.NoError(t, err)
	for i := range buf.Pix {
		buf.Pix[i] = uint8(i * 17)
	}
	return buf
}

func TestRenderKeepsDimensions(t *testing.T) {
	buf := sampleBuffer(t)
	out := NewProcessor(nil).Render(buf)

	assert.Equal(t, buf.Width, out.Width)
	assert.Equal(t, buf.Height, out.Height)
}

func TestRenderSelfBlendIsIdentity(t *testing.T) {
	buf := sampleBuffer(t)
	out := NewProcessor(nil).Render(buf)

	assert.Equal(t, buf.Pix, out.Pix)
}

func TestRenderIsIdempotentAndPure(t *testing.T) {
	buf := sampleBuffer(t)
	before := buf.Clone()
	p := NewProcessor(nil)

	first := p.Render(buf)
	second := p.Render(buf)

	assert.Equal(t, first.Pix, second.Pix)
	assert.Equal(t, before.Pix, buf.Pix)
	assert.NotSame(t, &buf.Pix[0], &first.Pix[0])
}

func TestBlendPixMatchesFormula(t *testing.T) {
	buf := sampleBuffer(t)
	out := NewProcessor(nil).blendPix(buf)
	assert.Equal(t, buf.Pix, out.Pix)
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, uint8(0), saturate(-3))
	assert.Equal(t, uint8(255), saturate(300))
	assert.Equal(t, uint8(3), saturate(2.5))
	assert.Equal(t, uint8(2), saturate(2.49))
}

type stubLoader struct {
	buf *models.ImageBuffer
	err error
}

func (s stubLoader) Load(string) (*models.ImageBuffer, error) { return s.buf, s.err }

func TestCoordinatorPrepare(t *testing.T) {
	buf := sampleBuffer(t)
	c := NewCoordinator(stubLoader{buf: buf}, NewProcessor(nil), nil)

	out, err := c.Prepare("/images/a.png")
	require.NoError(t, err)
	assert.Equal(t, buf.Pix, out.Pix)
}

func TestCoordinatorPassesLoaderErrors(t *testing.T) {
	c := NewCoordinator(stubLoader{err: fmt.Errorf("/images/empty.png: %w", ErrEmpty)}, NewProcessor(nil), nil)

	_, err := c.Prepare("/images/empty.png")
	assert.ErrorIs(t, err, ErrEmpty)
}
