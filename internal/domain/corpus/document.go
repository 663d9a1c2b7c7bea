package corpus

import "github.com/kailas-cloud/faqdex/internal/domain/vector"

// Document is one indexed question/answer pair (immutable value object).
type Document struct {
	id       int
	question string
	answer   string
	counts   map[string]int
	total    int
	vec      vector.Vector
}

// ID returns the document's stable position in the corpus.
func (d *Document) ID() int { return d.id }

// Question returns the original question text.
func (d *Document) Question() string { return d.question }

// Answer returns the answer text.
func (d *Document) Answer() string { return d.answer }

// TermCount returns the raw occurrence count of a term in the question.
func (d *Document) TermCount(term string) int { return d.counts[term] }

// Vector returns the document's TF-IDF weight vector.
func (d *Document) Vector() vector.Vector { return d.vec }
