package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"giflabel/internal/angle"
)

// Indicator colors, matching the original tool: solid red for the
// saved/selected angle, dashed yellow for the live hover angle.
var (
	persistentLineColor = color.NRGBA{R: 230, G: 60, B: 60, A: 255}
	hoverLineColor      = color.NRGBA{R: 230, G: 210, B: 60, A: 255}
)

// renderCanvas draws the indicator overlays onto a copy of the frame and
// converts the pixel grid into half-block cells: every cell shows two
// vertically stacked pixels via ▀ with a foreground/background color pair.
func renderCanvas(frame *image.NRGBA, persistent, hover *float64) string {
	img := overlay(frame, persistent, hover)

	var b strings.Builder
	for cy := 0; cy < CanvasCellsH; cy++ {
		if cy > 0 {
			b.WriteByte('\n')
		}
		for cx := 0; cx < CanvasCellsW; cx++ {
			top := hexAt(img, cx, cy*2)
			bottom := hexAt(img, cx, cy*2+1)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀")
			b.WriteString(cell)
		}
	}
	return b.String()
}

// overlay copies the frame and draws the angle indicator lines anchored at
// the top-center origin, nearly the full canvas height long.
func overlay(frame *image.NRGBA, persistent, hover *float64) *image.NRGBA {
	img := image.NewNRGBA(frame.Bounds())
	copy(img.Pix, frame.Pix)

	ox := float64(CanvasPixelW) / 2
	length := float64(CanvasPixelH) * 0.95

	if persistent != nil {
		x, y := angle.Endpoint(ox, 0, length, *persistent)
		angle.DrawLine(img, ox, 0, x, y, persistentLineColor)
	}
	if hover != nil {
		x, y := angle.Endpoint(ox, 0, length, *hover)
		angle.DrawDashedLine(img, ox, 0, x, y, hoverLineColor, 3, 3)
	}
	return img
}

// hexAt reads a pixel as a hex color string. Transparent pixels render as
// black, matching the original's black canvas background.
func hexAt(img *image.NRGBA, x, y int) string {
	c := img.NRGBAAt(x, y)
	if c.A == 0 {
		return "#000000"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
