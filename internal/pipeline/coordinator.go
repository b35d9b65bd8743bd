package pipeline

import (
	"time"

	"orthoview/internal/logger"
	"orthoview/internal/models"
)

// Coordinator runs a path through load and render.
type Coordinator struct {
	loader    ImageLoader
	processor ImageProcessor
	logger    logger.Logger
}

func NewCoordinator(loader ImageLoader, processor ImageProcessor, log logger.Logger) *Coordinator {
	if log == nil {
		log = logger.Nop{}
	}
	return &Coordinator{loader: loader, processor: processor, logger: log}
}

// Prepare returns the display buffer for path. Loader errors are returned
// unchanged so callers can match the sentinels.
func (c *Coordinator) Prepare(path string) (*models.ImageBuffer, error) {
	start := time.Now()

	decoded, err := c.loader.Load(path)
	if err != nil {
		return nil, err
	}

	rendered := c.processor.Render(decoded)

	c.logger.Debug("Pipeline", "image prepared", map[string]interface{}{
		"path":        path,
		"width":       rendered.Width,
		"height":      rendered.Height,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return rendered, nil
}
