package conversion

import (
	"fmt"

	"orthoview/internal/models"
	"orthoview/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// NormalizeToBGR returns an 8-bit, three channel BGR copy of src. Extra
// channels are discarded and wider depths are scaled down. The caller
// owns the returned Mat.
func NormalizeToBGR(src gocv.Mat) (gocv.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "BGR normalization"); err != nil {
		return gocv.NewMat(), err
	}

	eight, err := convertTo8Bit(src)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer eight.Close()

	dst := gocv.NewMat()
	switch eight.Channels() {
	case 3:
		eight.CopyTo(&dst)
	case 4:
		gocv.CvtColor(eight, &dst, gocv.ColorBGRAToBGR)
	case 1:
		gocv.CvtColor(eight, &dst, gocv.ColorGrayToBGR)
	case 2:
		// grey plus alpha
		planes := gocv.Split(eight)
		defer func() {
			for _, p := range planes {
				p.Close()
			}
		}()
		gocv.CvtColor(planes[0], &dst, gocv.ColorGrayToBGR)
	default:
		dst.Close()
		return gocv.NewMat(), fmt.Errorf("unsupported channel count: %d", eight.Channels())
	}

	if dst.Empty() {
		dst.Close()
		return gocv.NewMat(), fmt.Errorf("BGR normalization of %d channel Mat produced no data", eight.Channels())
	}
	return dst, nil
}

func convertTo8Bit(src gocv.Mat) (gocv.Mat, error) {
	dst := gocv.NewMat()

	var scale float32
	switch safe.Depth(src.Type()) {
	case gocv.MatTypeCV8U:
		src.CopyTo(&dst)
		return dst, nil
	case gocv.MatTypeCV16U, gocv.MatTypeCV16S:
		scale = 1.0 / 257.0
	case gocv.MatTypeCV32F, gocv.MatTypeCV64F:
		scale = 255
	default:
		scale = 1
	}

	src.ConvertToWithParams(&dst, gocv.MatTypeCV8U, scale, 0)
	if dst.Empty() {
		dst.Close()
		return gocv.NewMat(), fmt.Errorf("depth conversion of Mat type %d failed", int(src.Type()))
	}
	return dst, nil
}

// BGRToBuffer permutes a BGR Mat into a red-green-blue ImageBuffer.
func BGRToBuffer(bgr gocv.Mat) (*models.ImageBuffer, error) {
	if err := safe.ValidateColorConversion(bgr, gocv.ColorBGRToRGB); err != nil {
		return nil, err
	}

	rgb := gocv.NewMat()
	defer rgb.Close()
	gocv.CvtColor(bgr, &rgb, gocv.ColorBGRToRGB)
	if rgb.Empty() {
		return nil, fmt.Errorf("BGR to RGB conversion produced no data")
	}

	return MatToBuffer(rgb)
}

// MatToBuffer copies a three channel 8-bit Mat into an ImageBuffer
// without touching channel order.
func MatToBuffer(mat gocv.Mat) (*models.ImageBuffer, error) {
	if err := safe.ValidateMatForOperation(mat, "Mat to buffer"); err != nil {
		return nil, err
	}
	if mat.Channels() != models.Channels || safe.Depth(mat.Type()) != gocv.MatTypeCV8U {
		return nil, fmt.Errorf("Mat to buffer requires 8-bit %d channel data, got type %d", models.Channels, int(mat.Type()))
	}

	src := mat
	if !mat.IsContinuous() {
		src = mat.Clone()
		defer src.Close()
	}

	return models.NewImageBufferFromPix(src.Cols(), src.Rows(), src.ToBytes())
}

// BufferToMat copies an ImageBuffer into a new three channel Mat. The
// caller owns the returned Mat.
func BufferToMat(buf *models.ImageBuffer) (gocv.Mat, error) {
	if buf == nil {
		return gocv.NewMat(), fmt.Errorf("input buffer is nil")
	}
	if err := safe.ValidateDimensions(buf.Width, buf.Height, "buffer to Mat"); err != nil {
		return gocv.NewMat(), err
	}
	return gocv.NewMatFromBytes(buf.Height, buf.Width, gocv.MatTypeCV8UC3, buf.Pix)
}
