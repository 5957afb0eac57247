package model

import (
	"fmt"
	"strings"
)

// ItemStatus describes one item of the labeling set.
type ItemStatus struct {
	Filename string  // Item filename (key into the label store)
	Angle    float64 // Saved angle in degrees, meaningful only when Labeled
	Labeled  bool    // True if the item has a saved label
}

// Summary is a derived view of labeling progress. It is rebuilt from the
// item list and the label mapping on demand and is never the source of truth.
type Summary struct {
	Total   int
	Labeled int
	Items   []ItemStatus
}

// Remaining returns the number of items that still need a label.
func (s Summary) Remaining() int {
	return s.Total - s.Labeled
}

// BuildSummary derives a Summary from the canonical item order and the
// current label mapping.
func BuildSummary(items []string, labels map[string]float64) Summary {
	s := Summary{Total: len(items)}
	for _, name := range items {
		angle, ok := labels[name]
		if ok {
			s.Labeled++
		}
		s.Items = append(s.Items, ItemStatus{Filename: name, Angle: angle, Labeled: ok})
	}
	return s
}

// GenerateReport renders a plain-text progress report. With verbose set,
// every item is listed; otherwise only the unlabeled ones.
func GenerateReport(s Summary, verbose bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "giflabel report (v%s)\n", Version)
	fmt.Fprintf(&b, "Labeled: %d/%d (%d remaining)\n\n", s.Labeled, s.Total, s.Remaining())

	if verbose {
		b.WriteString("Items:\n")
		for _, it := range s.Items {
			if it.Labeled {
				fmt.Fprintf(&b, "  %s %-40s %7.2f°\n", IconLabeled, it.Filename, it.Angle)
			} else {
				fmt.Fprintf(&b, "  %s %-40s       -\n", IconUnlabeled, it.Filename)
			}
		}
		return b.String()
	}

	if s.Remaining() == 0 {
		b.WriteString("All items are labeled.\n")
		return b.String()
	}

	b.WriteString("Unlabeled items:\n")
	for _, it := range s.Items {
		if !it.Labeled {
			fmt.Fprintf(&b, "  %s %s\n", IconUnlabeled, it.Filename)
		}
	}
	return b.String()
}
