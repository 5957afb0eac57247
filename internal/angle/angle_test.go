package angle

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestFromPoint_CardinalDirections(t *testing.T) {
	const w = 400.0

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"directly below origin", w / 2, 100, 90},
		{"right of origin on horizontal", w, 0, 180},
		{"left of origin on horizontal", 0, 0, 0},
		{"lower-right diagonal", w/2 + 50, 50, 135},
		{"lower-left diagonal", w/2 - 50, 50, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPoint(tt.x, tt.y, w)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FromPoint(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFromPoint_ClampsOutsideQuadrant(t *testing.T) {
	const w = 400.0

	// Positions above the origin line map outside [0, 180] before clamping.
	tests := []struct {
		name string
		x, y float64
	}{
		{"above right", w, -50},
		{"above left", 0, -50},
		{"directly above", w / 2, -50},
		{"far outside region", -1000, -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPoint(tt.x, tt.y, w)
			if got < 0 || got > 180 {
				t.Errorf("FromPoint(%v, %v) = %v, outside [0, 180]", tt.x, tt.y, got)
			}
		})
	}
}

func TestFromPoint_MonotonicAcrossSweep(t *testing.T) {
	// Sweeping a pointer left along a horizontal line below the origin must
	// produce strictly decreasing angles.
	const w = 400.0
	prev := 181.0
	for x := w; x >= 0; x -= 5 {
		a := FromPoint(x, 120, w)
		if a >= prev {
			t.Fatalf("angle not decreasing at x=%v: %v >= %v", x, a, prev)
		}
		prev = a
	}
}

func TestEndpoint_RoundTrip(t *testing.T) {
	// The point Endpoint produces must map back to the same angle.
	const w = 400.0
	for _, a := range []float64{0, 30, 45, 90, 120, 179, 180} {
		x, y := Endpoint(w/2, 0, 150, a)
		got := FromPoint(x, y, w)
		if math.Abs(got-a) > 1e-6 {
			t.Errorf("round trip for %v° gave %v°", a, got)
		}
	}
}

func TestDrawLine_PaintsEndpoints(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	c := color.NRGBA{255, 0, 0, 255}

	DrawLine(img, 2, 2, 17, 9, c)

	if img.NRGBAAt(2, 2) != c {
		t.Error("start point not painted")
	}
	if img.NRGBAAt(17, 9) != c {
		t.Error("end point not painted")
	}
}

func TestDrawDashedLine_LeavesGaps(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 5))
	c := color.NRGBA{255, 255, 0, 255}

	DrawDashedLine(img, 0, 2, 39, 2, c, 3, 3)

	painted, gaps := 0, 0
	for x := 0; x < 40; x++ {
		if img.NRGBAAt(x, 2) == c {
			painted++
		} else {
			gaps++
		}
	}
	if painted == 0 || gaps == 0 {
		t.Errorf("dashed line should mix painted (%d) and gap (%d) pixels", painted, gaps)
	}
}
