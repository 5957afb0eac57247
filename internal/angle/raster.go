package angle

import (
	"image/color"
	"image/draw"
	"math"
)

// DrawLine rasterizes a straight line onto img by stepping one pixel at a
// time along the longer axis. Endpoints outside the image bounds are fine;
// out-of-range pixels are simply dropped by Set.
func DrawLine(img draw.Image, x0, y0, x1, y1 float64, c color.Color) {
	drawSegments(img, x0, y0, x1, y1, c, 0, 0)
}

// DrawDashedLine is DrawLine with a repeating on/off pixel pattern, used for
// the hover indicator so it reads differently from the saved one.
func DrawDashedLine(img draw.Image, x0, y0, x1, y1 float64, c color.Color, on, off int) {
	if on <= 0 {
		on = 3
	}
	if off <= 0 {
		off = 3
	}
	drawSegments(img, x0, y0, x1, y1, c, on, off)
}

func drawSegments(img draw.Image, x0, y0, x1, y1 float64, c color.Color, on, off int) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		img.Set(int(math.Round(x0)), int(math.Round(y0)), c)
		return
	}

	xInc := dx / float64(steps)
	yInc := dy / float64(steps)
	period := on + off

	x, y := x0, y0
	for i := 0; i <= steps; i++ {
		if period == 0 || i%period < on {
			img.Set(int(math.Round(x)), int(math.Round(y)), c)
		}
		x += xInc
		y += yInc
	}
}
