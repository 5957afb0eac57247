// Package generate builds the animated GIFs the labeler consumes: still
// frames are masked to a half-circle wedge facing a measured direction,
// tick marks are overlaid every 10 degrees, and each metadata entry becomes
// one looping GIF. Entries are independent, so they are fanned out to a
// fixed worker pool.
package generate

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry describes one output sequence: where the wedge sits in the source
// frames, which way it faces, and which slice of the frame list to animate.
type Entry struct {
	Point1          [2]int  `json:"point1"`
	Direction       float64 `json:"direction"`
	BatchStartIndex int     `json:"batch_start_index"`
	BatchEndIndex   int     `json:"batch_end_index"`
}

// LoadMetadata parses the JSON metadata file: a flat array of entries.
func LoadMetadata(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}
	return entries, nil
}

// clampRange limits a [start, end) frame slice to the available frame count.
func clampRange(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}
