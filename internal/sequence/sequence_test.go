package sequence

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeTestGIF builds a two-frame animated GIF on disk: a red frame and a
// green frame, with the given delays (hundredths of a second).
func writeTestGIF(t *testing.T, path string, delays []int) {
	t.Helper()

	palette := []color.Color{
		color.NRGBA{0, 0, 0, 255},
		color.NRGBA{255, 0, 0, 255},
		color.NRGBA{0, 255, 0, 255},
	}

	g := &gif.GIF{LoopCount: 0}
	for i, ci := range []uint8{1, 2} {
		frame := image.NewPaletted(image.Rect(0, 0, 16, 8), palette)
		for p := range frame.Pix {
			frame.Pix[p] = ci
		}
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, delays[i])
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, g); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_FramesDelaysAndSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.gif")
	writeTestGIF(t, path, []int{5, 0})

	seq, err := Load(path, 8, 4)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if seq.Len() != 2 {
		t.Fatalf("expected 2 frames, got %d", seq.Len())
	}
	for i, frame := range seq.Frames {
		b := frame.Bounds()
		if b.Dx() != 8 || b.Dy() != 4 {
			t.Errorf("frame %d size = %dx%d, want 8x4", i, b.Dx(), b.Dy())
		}
	}

	if seq.Delay(0) != 50*time.Millisecond {
		t.Errorf("delay 0 = %v, want 50ms", seq.Delay(0))
	}
	if seq.Delay(1) != DefaultDelay {
		t.Errorf("zero delay should fall back to default, got %v", seq.Delay(1))
	}
}

func TestLoad_FrameContentIsComposited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.gif")
	writeTestGIF(t, path, []int{10, 10})

	seq, err := Load(path, 16, 8)
	if err != nil {
		t.Fatal(err)
	}

	// Frame 0 is solid red, frame 1 solid green; sample the center pixel.
	r0 := seq.Frames[0].NRGBAAt(8, 4)
	if r0.R < 200 || r0.G > 60 {
		t.Errorf("frame 0 center = %+v, want red", r0)
	}
	r1 := seq.Frames[1].NRGBAAt(8, 4)
	if r1.G < 200 || r1.R > 60 {
		t.Errorf("frame 1 center = %+v, want green", r1)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.gif"), 8, 4); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("not a gif", func(t *testing.T) {
		path := filepath.Join(dir, "junk.gif")
		if err := os.WriteFile(path, []byte("this is not a gif"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path, 8, 4); err == nil {
			t.Error("expected decode error")
		}
	})
}
