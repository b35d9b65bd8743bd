package plot

import (
	"fmt"
	"strconv"
	"strings"
)

// maxStatusTokens bounds how many trailing tokens are considered.
const maxStatusTokens = 5

// FormatStatus rewrites a coordinate message such as "x=12.5 y=3" into
// two aligned lines. Anything it cannot parse is returned unchanged.
func FormatStatus(s string) string {
	fields := strings.Fields(s)
	if len(fields) > maxStatusTokens {
		fields = fields[len(fields)-maxStatusTokens:]
	}
	if len(fields) < 2 || len(fields[0]) < 2 || len(fields[1]) < 2 {
		return s
	}

	x, err := strconv.ParseFloat(fields[0][2:], 64)
	if err != nil {
		return s
	}
	y, err := strconv.ParseFloat(fields[1][2:], 64)
	if err != nil {
		return s
	}
	return fmt.Sprintf("x = %.2f\ny = %.2f", x, y)
}

// coordinateMessage is the raw message the canvas emits on pointer
// motion, with the pixel value appended when over the image.
func coordinateMessage(x, y float64, rgb []uint8) string {
	msg := fmt.Sprintf("x=%.1f y=%.1f", x, y)
	if rgb != nil {
		msg += fmt.Sprintf(" [%d, %d, %d]", rgb[0], rgb[1], rgb[2])
	}
	return msg
}
