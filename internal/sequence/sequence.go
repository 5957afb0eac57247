// Package sequence decodes an animated GIF into a flat list of full frames
// sized for the display canvas. GIF frames are deltas against a shared
// canvas, so each one is composited according to its disposal mode before
// being resized.
package sequence

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"os"
	"time"

	"github.com/disintegration/imaging"
)

// DefaultDelay is used for frames whose GIF delay is zero or missing.
const DefaultDelay = 100 * time.Millisecond

// Sequence is an ordered, finite, restartable list of decoded frames.
type Sequence struct {
	Frames []*image.NRGBA
	Delays []time.Duration
}

// Len returns the frame count.
func (s *Sequence) Len() int { return len(s.Frames) }

// Delay returns the display duration of frame i.
func (s *Sequence) Delay(i int) time.Duration { return s.Delays[i] }

// Load decodes the GIF at path and returns its frames resized to
// width×height pixels with Lanczos resampling.
func Load(path string, width, height int) (*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("decode %s: no frames", path)
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewNRGBA(bounds)

	seq := &Sequence{}
	for i, frame := range g.Image {
		var restore *image.NRGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			restore = cloneNRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		seq.Frames = append(seq.Frames, imaging.Resize(canvas, width, height, imaging.Lanczos))

		d := DefaultDelay
		if i < len(g.Delay) && g.Delay[i] > 0 {
			d = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		seq.Delays = append(seq.Delays, d)

		switch disposal {
		case gif.DisposalBackground:
			clearRect(canvas, frame.Bounds())
		case gif.DisposalPrevious:
			canvas = restore
		}
	}

	return seq, nil
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

func clearRect(img *image.NRGBA, r image.Rectangle) {
	draw.Draw(img, r, image.Transparent, image.Point{}, draw.Src)
}
