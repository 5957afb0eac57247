package session

import "errors"

// Fatal startup conditions: the session cannot run without a backing item set.
var (
	ErrSourceNotFound = errors.New("source directory not found")
	ErrNoItems        = errors.New("no items found")
)

// Recoverable conditions surfaced to the user as notices.
var (
	ErrEndOfSequence    = errors.New("already at the last item")
	ErrStartOfSequence  = errors.New("already at the first item")
	ErrAllLabeled       = errors.New("all items are labeled")
	ErrNoSelection      = errors.New("no angle selected")
	ErrStoreWriteFailed = errors.New("could not write label store")
)
