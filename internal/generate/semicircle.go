package generate

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"giflabel/internal/angle"
)

// tickStep is the spacing of the overlaid angle tick marks, in degrees.
const tickStep = 10

// CropHalfCircle masks img to the half disc of the given radius centered at
// (cx, cy) and facing direction (degrees, screen coordinates: y grows down),
// draws tick marks along the rim, and crops the result to the wedge's
// bounding box.
func CropHalfCircle(img image.Image, cx, cy, radius int, direction float64) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)

	// Unit vector of the facing direction. A pixel belongs to the wedge when
	// its offset from the center is within 90° of that vector, which reduces
	// to a non-negative dot product.
	dirRad := direction * math.Pi / 180
	ux, uy := math.Cos(dirRad), math.Sin(dirRad)

	bbox := image.Rectangle{Min: image.Pt(b.Max.X, b.Max.Y), Max: image.Pt(b.Min.X, b.Min.Y)}
	r2 := radius * radius
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			if float64(dx)*ux+float64(dy)*uy < 0 {
				continue
			}
			out.Set(x, y, img.At(x, y))
			if x < bbox.Min.X {
				bbox.Min.X = x
			}
			if y < bbox.Min.Y {
				bbox.Min.Y = y
			}
			if x >= bbox.Max.X {
				bbox.Max.X = x + 1
			}
			if y >= bbox.Max.Y {
				bbox.Max.Y = y + 1
			}
		}
	}
	if bbox.Empty() {
		bbox = image.Rect(cx, cy, cx+1, cy+1)
	}

	drawTicks(out, cx, cy, radius, direction)

	return imaging.Crop(out, bbox)
}

// drawTicks draws short white marks from 0.9r to r every tickStep degrees
// across the wedge's 180° span.
func drawTicks(img *image.NRGBA, cx, cy, radius int, direction float64) {
	white := color.NRGBA{255, 255, 255, 255}
	fcx, fcy := float64(cx), float64(cy)
	fr := float64(radius)

	start := int(direction) - 90
	end := int(direction) + 90
	for a := start; a <= end; a += tickStep {
		rad := float64(a) * math.Pi / 180
		x0 := fcx + 0.9*fr*math.Cos(rad)
		y0 := fcy + 0.9*fr*math.Sin(rad)
		x1 := fcx + fr*math.Cos(rad)
		y1 := fcy + fr*math.Sin(rad)
		angle.DrawLine(img, x0, y0, x1, y1, white)
	}
}
