package match

import (
	"math"
	"testing"

	"github.com/kailas-cloud/faqdex/internal/domain/corpus"
	"github.com/kailas-cloud/faqdex/internal/domain/token"
)

func buildCorpus(t *testing.T, pairs []corpus.Pair) *corpus.Corpus {
	t.Helper()
	c, err := corpus.Build(pairs)
	if err != nil {
		t.Fatalf("corpus.Build: %v", err)
	}
	return c
}

func TestRank_SelfQueryScoresOne(t *testing.T) {
	c := buildCorpus(t, []corpus.Pair{
		{Question: "What are your hours?", Answer: "9 to 5."},
		{Question: "Where are you located?", Answer: "123 Main St."},
	})

	query := c.Vectorize(token.Tokenize("What are your hours?"))
	ranked := Rank(query, c)

	if len(ranked) != 2 {
		t.Fatalf("expected all documents scored, got %d", len(ranked))
	}
	if ranked[0].ID() != 0 {
		t.Errorf("expected document 0 first, got %d", ranked[0].ID())
	}
	if math.Abs(ranked[0].Score()-1.0) > 1e-9 {
		t.Errorf("self-similarity = %f, want 1.0", ranked[0].Score())
	}
}

func TestRank_SortedDescending(t *testing.T) {
	c := buildCorpus(t, []corpus.Pair{
		{Question: "What are your hours?", Answer: "9 to 5."},
		{Question: "Where are you located?", Answer: "123 Main St."},
		{Question: "Do you deliver pizza?", Answer: "No."},
	})

	query := c.Vectorize(token.Tokenize("what time do your hours start"))
	ranked := Rank(query, c)

	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score() > ranked[i-1].Score() {
			t.Errorf("not sorted descending: [%d]=%f > [%d]=%f",
				i, ranked[i].Score(), i-1, ranked[i-1].Score())
		}
	}
}

func TestRank_ZeroQueryScoresAllZero(t *testing.T) {
	c := buildCorpus(t, []corpus.Pair{
		{Question: "What are your hours?", Answer: "9 to 5."},
		{Question: "Where are you located?", Answer: "123 Main St."},
	})

	query := c.Vectorize(token.Tokenize("completely unrelated gibberish"))
	ranked := Rank(query, c)

	for _, m := range ranked {
		if m.Score() != 0 {
			t.Errorf("document %d scored %f against zero query, want 0", m.ID(), m.Score())
		}
	}
	// Ties broken by insertion order.
	if ranked[0].ID() != 0 || ranked[1].ID() != 1 {
		t.Errorf("tie order not stable: got %d, %d", ranked[0].ID(), ranked[1].ID())
	}
}

func TestRank_TieStability(t *testing.T) {
	// Identical questions tie exactly; the earlier document must rank first.
	c := buildCorpus(t, []corpus.Pair{
		{Question: "What are your hours?", Answer: "first"},
		{Question: "What are your hours?", Answer: "second"},
	})

	query := c.Vectorize(token.Tokenize("your hours"))
	ranked := Rank(query, c)

	if ranked[0].ID() != 0 {
		t.Errorf("expected first-inserted document to win the tie, got %d", ranked[0].ID())
	}
	if ranked[0].Answer() != "first" {
		t.Errorf("expected answer of first document, got %q", ranked[0].Answer())
	}
}

func TestRank_OpeningHoursQuery(t *testing.T) {
	c := buildCorpus(t, []corpus.Pair{
		{Question: "What are your hours?", Answer: "9 to 5."},
		{Question: "Where are you located?", Answer: "123 Main St."},
	})

	query := c.Vectorize(token.Tokenize("what time do you open"))
	ranked := Rank(query, c)

	// The hours document must come out on top, by score or by stable order.
	if ranked[0].ID() != 0 {
		t.Errorf("expected hours document first, got %d (%f vs %f)",
			ranked[0].ID(), ranked[0].Score(), ranked[1].Score())
	}
	if ranked[0].Answer() != "9 to 5." {
		t.Errorf("expected hours answer, got %q", ranked[0].Answer())
	}
	if ranked[1].Score() > ranked[0].Score() {
		t.Errorf("ranking inverted: %f > %f", ranked[1].Score(), ranked[0].Score())
	}
}
