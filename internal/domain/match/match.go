// Package match scores a query vector against every corpus document.
package match

import (
	"sort"

	"github.com/kailas-cloud/faqdex/internal/domain/corpus"
	"github.com/kailas-cloud/faqdex/internal/domain/vector"
)

// Match is a single scored document (immutable value object).
type Match struct {
	id       int
	question string
	answer   string
	score    float64
}

// New creates a match.
func New(id int, question, answer string, score float64) Match {
	return Match{id: id, question: question, answer: answer, score: score}
}

// ID returns the document's corpus position.
func (m *Match) ID() int { return m.id }

// Question returns the matched question text.
func (m *Match) Question() string { return m.question }

// Answer returns the matched answer text.
func (m *Match) Answer() string { return m.answer }

// Score returns the cosine similarity in [0, 1].
func (m *Match) Score() float64 { return m.score }

// Rank scores the query vector against every document and returns all of
// them sorted by similarity descending. Ties keep corpus insertion order
// (stable sort), so results are deterministic for a given corpus and query.
func Rank(query vector.Vector, c *corpus.Corpus) []Match {
	ranked := make([]Match, c.Len())
	for i := 0; i < c.Len(); i++ {
		doc := c.Doc(i)
		ranked[i] = New(doc.ID(), doc.Question(), doc.Answer(), query.Cosine(doc.Vector()))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}
