package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// OutpaintCanvasSize computes the canvas an image must be centered on before
// an outpaint request: the smallest canvas with exactly the requested aspect
// ratio that fully contains the original at unchanged scale. Both dimensions
// are rounded to the nearest even integer. The compositing itself happens in
// the browser; this mirrors that arithmetic so the two sides agree.
func OutpaintCanvasSize(width, height int, aspect string) (int, int, error) {
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid source dimensions %dx%d", width, height)
	}
	aw, ah, err := parseAspect(aspect)
	if err != nil {
		return 0, 0, err
	}

	ratio := float64(aw) / float64(ah)
	srcRatio := float64(width) / float64(height)

	var w, h float64
	if ratio >= srcRatio {
		// Wider target: keep height, extend width.
		h = float64(height)
		w = h * ratio
	} else {
		// Taller target: keep width, extend height.
		w = float64(width)
		h = w / ratio
	}
	return roundEven(w), roundEven(h), nil
}

func parseAspect(aspect string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(aspect), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid aspect ratio %q", aspect)
	}
	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errB != nil || a <= 0 || b <= 0 {
		return 0, 0, fmt.Errorf("invalid aspect ratio %q", aspect)
	}
	return a, b, nil
}

func roundEven(v float64) int {
	return int(v/2+0.5) * 2
}
