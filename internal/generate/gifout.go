package generate

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// writeGIF quantizes each frame against the Plan9 palette and encodes a
// looping GIF at the given frame rate.
func writeGIF(frames []*image.NRGBA, path string, fps int) error {
	if fps <= 0 {
		fps = 24
	}
	delay := 100 / fps // gif delays are in hundredths of a second
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.Draw(paletted, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	return gif.EncodeAll(f, out)
}
