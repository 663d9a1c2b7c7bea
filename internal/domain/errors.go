// Package domain holds errors and contracts shared between layers.
package domain

import "errors"

var (
	// ErrEmptyCorpus signals that the QA source delivered zero pairs.
	// Fatal at startup — the matcher cannot run without a corpus.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrSourceUnavailable signals that the QA source cannot be reached.
	ErrSourceUnavailable = errors.New("qa source unavailable")
)
