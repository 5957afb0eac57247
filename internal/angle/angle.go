// Package angle holds the pointer-to-angle geometry shared by the labeling
// UI and the GIF generator. Angles are degrees in [0, 180] measured from the
// top-center of the display region: straight right is 0°, straight down is
// 90°, straight left is 180°.
package angle

import "math"

// Clamp limits a to the labelable range [0, 180].
func Clamp(a float64) float64 {
	return math.Max(0, math.Min(180, a))
}

// FromPoint converts a pointer position (x, y), relative to a display region
// of the given width, to an angle. The geometric origin is the top-center
// point (width/2, 0). Positions outside the lower half-plane still clamp to
// the valid range.
func FromPoint(x, y, width float64) float64 {
	rads := math.Atan2(y, x-width/2)
	degs := rads * 180 / math.Pi
	return Clamp(180 - degs)
}

// Endpoint returns the far end of an indicator line of the given length
// anchored at (ox, oy) and pointing along the angle.
func Endpoint(ox, oy, length, a float64) (x, y float64) {
	rad := (180 - a) * math.Pi / 180
	return ox + length*math.Cos(rad), oy + length*math.Sin(rad)
}
