package pipeline

import (
	"orthoview/internal/logger"
	"orthoview/internal/models"
	"orthoview/internal/opencv/conversion"

	"gocv.io/x/gocv"
)

// OverlayAlpha is the weight of the overlay copy in the display blend.
const OverlayAlpha = 0.75

// Processor applies the fixed overlay blend. The overlay is a copy of the
// source itself, so the result equals the input up to rounding.
type Processor struct {
	alpha  float64
	logger logger.Logger
}

func NewProcessor(log logger.Logger) *Processor {
	if log == nil {
		log = logger.Nop{}
	}
	return &Processor{alpha: OverlayAlpha, logger: log}
}

// Render never fails for a valid buffer. If OpenCV cannot run the blend
// the formula is evaluated directly.
func (p *Processor) Render(buf *models.ImageBuffer) *models.ImageBuffer {
	out, err := p.blendMat(buf)
	if err != nil {
		p.logger.Warning("ImageProcessor", "OpenCV blend unavailable, blending in Go", map[string]interface{}{
			"error": err.Error(),
		})
		return p.blendPix(buf)
	}
	return out
}

func (p *Processor) blendMat(buf *models.ImageBuffer) (*models.ImageBuffer, error) {
	src, err := conversion.BufferToMat(buf)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	overlay := src.Clone()
	defer overlay.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.AddWeighted(overlay, p.alpha, src, 1-p.alpha, 0, &dst)

	return conversion.MatToBuffer(dst)
}

func (p *Processor) blendPix(buf *models.ImageBuffer) *models.ImageBuffer {
	out := buf.Clone()
	overlay := buf.Pix
	for i, v := range buf.Pix {
		blended := float64(overlay[i])*p.alpha + float64(v)*(1-p.alpha)
		out.Pix[i] = saturate(blended)
	}
	return out
}

// saturate rounds half away from zero and clamps like cv::saturate_cast.
func saturate(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
