package generate

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/disintegration/imaging"
)

// Config controls one batch run.
type Config struct {
	MetadataPath string // JSON metadata file
	FramesDir    string // directory of still frames
	OutDir       string // where the GIFs are written
	Name         string // output name prefix
	Radius       int    // wedge radius in pixels
	FPS          int    // output frame rate
	Workers      int    // worker pool size
}

// task pairs a metadata entry with its output index.
type task struct {
	idx   int
	entry Entry
}

// Run executes the whole batch: every metadata entry becomes one GIF in
// cfg.OutDir. Entries share no state, so they are processed by a fixed pool
// of workers; a failing entry is logged and counted but never prevents the
// remaining entries from producing their outputs.
func Run(cfg Config) error {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Radius <= 0 {
		cfg.Radius = 128
	}

	entries, err := LoadMetadata(cfg.MetadataPath)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("metadata %s: no entries", cfg.MetadataPath)
	}

	framePaths, err := listFrames(cfg.FramesDir)
	if err != nil {
		return err
	}
	if len(framePaths) == 0 {
		return fmt.Errorf("no frames found in %s", cfg.FramesDir)
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}

	log.Printf("generating %d gifs from %d frames with %d workers", len(entries), len(framePaths), cfg.Workers)

	jobs := make(chan task)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed []error

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				out := filepath.Join(cfg.OutDir, fmt.Sprintf("%s_output_%d.gif", cfg.Name, t.idx+1))
				if err := generateOne(t.entry, framePaths, out, cfg.Radius, cfg.FPS); err != nil {
					log.Printf("entry %d: %v", t.idx+1, err)
					mu.Lock()
					failed = append(failed, fmt.Errorf("entry %d: %w", t.idx+1, err))
					mu.Unlock()
					continue
				}
				log.Printf("wrote %s", out)
			}
		}()
	}

	for i, e := range entries {
		jobs <- task{idx: i, entry: e}
	}
	close(jobs)
	wg.Wait()

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d entries failed, first: %w", len(failed), len(entries), failed[0])
	}
	return nil
}

// generateOne builds a single GIF: slice the frame list, mask each still to
// the half circle, and assemble.
func generateOne(e Entry, framePaths []string, outPath string, radius, fps int) error {
	// Directions in the metadata are measured against the opposite axis of
	// the screen wedge, hence the half-turn.
	direction := e.Direction - 180

	start, end := clampRange(e.BatchStartIndex, e.BatchEndIndex, len(framePaths))
	if start == end {
		return fmt.Errorf("empty frame range [%d, %d)", e.BatchStartIndex, e.BatchEndIndex)
	}

	var frames []*image.NRGBA
	for _, p := range framePaths[start:end] {
		img, err := imaging.Open(p)
		if err != nil {
			return fmt.Errorf("open frame %s: %w", p, err)
		}
		frames = append(frames, CropHalfCircle(img, e.Point1[0], e.Point1[1], radius, direction))
	}

	return writeGIF(frames, outPath, fps)
}

// listFrames returns the sorted still-frame paths (jpg/jpeg/png).
func listFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".jpg", ".jpeg", ".png", ".JPG", ".JPEG", ".PNG":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
