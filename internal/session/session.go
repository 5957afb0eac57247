// Package session implements the labeling session controller: the ordered
// item set, the cursor, the in-memory label mapping and the pending (unsaved)
// selection. It is synchronous and free of any UI concern; the TUI drives it
// from event handlers and the report/json/web modes read it.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"giflabel/internal/angle"
	"giflabel/internal/model"
	"giflabel/internal/store"
)

// Session holds all mutable labeling state. Items and their order are fixed
// at Start; cursor and pending selection live only for the process lifetime.
type Session struct {
	dir       string
	storePath string

	items  []string
	labels map[string]float64

	cursor     int
	pending    float64
	hasPending bool
}

// Start enumerates the items in dir by case-insensitive extension match
// (ext includes the dot, e.g. ".gif"), sorts them to fix the navigation
// order, and loads any existing labels from storePath. The cursor starts at
// the first unlabeled item, or at 0 for review when everything is labeled.
func Start(dir, storePath, ext string) (*Session, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, dir)
		}
		return nil, err
	}

	var items []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			items = append(items, e.Name())
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrNoItems, ext, dir)
	}
	sort.Strings(items)

	labels, err := store.Load(storePath)
	if err != nil {
		return nil, err
	}

	s := &Session{
		dir:       dir,
		storePath: storePath,
		items:     items,
		labels:    labels,
	}

	// Resume at the first item still missing a label.
	for i, name := range items {
		if _, ok := labels[name]; !ok {
			s.cursor = i
			break
		}
	}

	return s, nil
}

// Items returns the canonical navigation order.
func (s *Session) Items() []string { return s.items }

// Cursor returns the index of the current item.
func (s *Session) Cursor() int { return s.cursor }

// Current returns the filename of the current item.
func (s *Session) Current() string { return s.items[s.cursor] }

// Path returns the full path of the current item.
func (s *Session) Path() string { return filepath.Join(s.dir, s.Current()) }

// Advance moves the cursor forward by one. At the last item it reports
// ErrEndOfSequence and leaves the cursor unchanged.
func (s *Session) Advance() error {
	if s.cursor >= len(s.items)-1 {
		return ErrEndOfSequence
	}
	s.moveTo(s.cursor + 1)
	return nil
}

// Retreat moves the cursor back by one. At the first item it reports
// ErrStartOfSequence and leaves the cursor unchanged.
func (s *Session) Retreat() error {
	if s.cursor <= 0 {
		return ErrStartOfSequence
	}
	s.moveTo(s.cursor - 1)
	return nil
}

// SeekNextUnlabeled scans circularly, starting just after the cursor and
// wrapping at the end, for the first item without a label. When every item
// is labeled it reports ErrAllLabeled and falls back to a plain Advance.
func (s *Session) SeekNextUnlabeled() error {
	n := len(s.items)
	for i := 1; i < n; i++ {
		idx := (s.cursor + i) % n
		if _, ok := s.labels[s.items[idx]]; !ok {
			s.moveTo(idx)
			return nil
		}
	}
	if err := s.Advance(); err != nil {
		return err
	}
	return ErrAllLabeled
}

func (s *Session) moveTo(idx int) {
	s.cursor = idx
	s.hasPending = false
}

// Select records angle as the pending (unsaved) selection for the current
// item, clamped to [0, 180].
func (s *Session) Select(a float64) {
	s.pending = angle.Clamp(a)
	s.hasPending = true
}

// Pending returns the unsaved selection for the current item, if any.
func (s *Session) Pending() (float64, bool) { return s.pending, s.hasPending }

// ClearPending drops the unsaved selection.
func (s *Session) ClearPending() { s.hasPending = false }

// Saved returns the stored label for the current item, if any.
func (s *Session) Saved() (float64, bool) {
	a, ok := s.labels[s.Current()]
	return a, ok
}

// Save promotes the pending selection into the label mapping and rewrites
// the store. With no pending selection it reports ErrNoSelection and does no
// I/O. On a write failure the pre-write mapping is restored, keeping memory
// and disk consistent with each other.
func (s *Session) Save() error {
	if !s.hasPending {
		return ErrNoSelection
	}

	name := s.Current()
	prev, had := s.labels[name]
	s.labels[name] = s.pending

	if err := store.Save(s.storePath, s.items, s.labels); err != nil {
		if had {
			s.labels[name] = prev
		} else {
			delete(s.labels, name)
		}
		return fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
	}

	s.hasPending = false
	return nil
}

// Undo removes the current item's label and rewrites the store, with the
// same restore-on-failure discipline as Save. Undo on an unlabeled item is a
// silent no-op; the pending selection is cleared either way.
func (s *Session) Undo() error {
	s.hasPending = false

	name := s.Current()
	prev, had := s.labels[name]
	if !had {
		return nil
	}
	delete(s.labels, name)

	if err := store.Save(s.storePath, s.items, s.labels); err != nil {
		s.labels[name] = prev
		return fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
	}
	return nil
}

// Progress reports labeled versus total item counts. Stale store rows for
// files no longer in the directory are not counted.
func (s *Session) Progress() (labeled, total int) {
	for _, name := range s.items {
		if _, ok := s.labels[name]; ok {
			labeled++
		}
	}
	return labeled, len(s.items)
}

// Summary derives the full per-item progress view.
func (s *Session) Summary() model.Summary {
	return model.BuildSummary(s.items, s.labels)
}
