package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"gocv.io/x/gocv"

	"orthoview/internal/logger"
	"orthoview/internal/models"
	"orthoview/internal/opencv/conversion"
)

type decodeMode struct {
	name  string
	flags gocv.IMReadFlag
}

var decodeModes = []decodeMode{
	{name: "color", flags: gocv.IMReadColor},
	// keeps alpha and extra depth; conversion drops them afterwards
	{name: "unchanged", flags: gocv.IMReadUnchanged},
}

type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop{}
	}
	return &Loader{logger: log}
}

func (l *Loader) Load(path string) (*models.ImageBuffer, error) {
	start := time.Now()

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}

	l.logger.Debug("ImageLoader", "loading image", map[string]interface{}{
		"path":       path,
		"extension":  strings.ToLower(filepath.Ext(path)),
		"size_bytes": info.Size(),
	})

	for _, mode := range decodeModes {
		buf, err := l.decode(path, mode)
		if err != nil {
			l.logger.Debug("ImageLoader", "decode attempt failed", map[string]interface{}{
				"path":  path,
				"mode":  mode.name,
				"error": err.Error(),
			})
			continue
		}

		l.logger.Info("ImageLoader", "image loaded successfully", map[string]interface{}{
			"path":        path,
			"width":       buf.Width,
			"height":      buf.Height,
			"mode":        mode.name,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return buf, nil
	}

	return nil, fmt.Errorf("%s (detected %s): %w", path, sniff(path), ErrDecode)
}

func (l *Loader) decode(path string, mode decodeMode) (*models.ImageBuffer, error) {
	mat := gocv.IMRead(path, mode.flags)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("%s decode returned no pixel data", mode.name)
	}

	bgr, err := conversion.NormalizeToBGR(mat)
	if err != nil {
		return nil, err
	}
	defer bgr.Close()

	return conversion.BGRToBuffer(bgr)
}

// sniff names the content type from the file header for error messages.
func sniff(path string) string {
	kind, err := filetype.MatchFile(path)
	if err != nil || kind == filetype.Unknown {
		return "unknown content"
	}
	return kind.MIME.Value
}
