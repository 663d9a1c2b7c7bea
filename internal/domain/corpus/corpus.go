// Package corpus builds the immutable TF-IDF index over question/answer pairs.
package corpus

import (
	"math"

	"github.com/kailas-cloud/faqdex/internal/domain"
	"github.com/kailas-cloud/faqdex/internal/domain/token"
	"github.com/kailas-cloud/faqdex/internal/domain/vector"
)

// Pair is one question/answer record as delivered by a QA source.
// Validation of malformed records happens in the loader.
type Pair struct {
	Question string
	Answer   string
}

// Corpus is the read-only TF-IDF index over all known questions.
// Built once at startup via Build; safe for concurrent readers.
type Corpus struct {
	docs []Document
	idf  map[string]float64
}

// Build tokenizes every question, computes document frequencies and the IDF
// table, and derives one weight vector per document. The returned Corpus is
// immutable — vectors are never patched after construction.
//
// idf(t) = ln(N / df(t)). Terms never seen in the corpus are absent from the
// table and contribute zero weight to any future query.
func Build(pairs []Pair) (*Corpus, error) {
	if len(pairs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	docs := make([]Document, len(pairs))
	df := make(map[string]int)

	for i, p := range pairs {
		terms := token.Tokenize(p.Question)
		counts := make(map[string]int, len(terms))
		for _, t := range terms {
			counts[t]++
		}
		for t := range counts {
			df[t]++
		}
		docs[i] = Document{
			id:       i,
			question: p.Question,
			answer:   p.Answer,
			counts:   counts,
			total:    len(terms),
		}
	}

	n := float64(len(pairs))
	idf := make(map[string]float64, len(df))
	for t, count := range df {
		idf[t] = math.Log(n / float64(count))
	}

	for i := range docs {
		docs[i].vec = weigh(docs[i].counts, docs[i].total, idf)
	}

	return &Corpus{docs: docs, idf: idf}, nil
}

// Vectorize computes the TF-IDF vector for an already-tokenized text against
// the corpus's fixed IDF table. The TF computation is identical to the one
// used at build time; terms absent from the table are dropped.
func (c *Corpus) Vectorize(terms []string) vector.Vector {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return weigh(counts, len(terms), c.idf)
}

// Len returns the number of documents in the corpus.
func (c *Corpus) Len() int { return len(c.docs) }

// Doc returns the document at position i in insertion order.
func (c *Corpus) Doc(i int) *Document { return &c.docs[i] }

// weigh turns raw term counts into a TF-IDF vector: tf = count/total,
// weight = tf * idf. A zero-term text yields a zero vector.
func weigh(counts map[string]int, total int, idf map[string]float64) vector.Vector {
	if total == 0 {
		return vector.Vector{}
	}
	vec := make(vector.Vector, len(counts))
	for t, count := range counts {
		w, ok := idf[t]
		if !ok {
			continue
		}
		if weight := float64(count) / float64(total) * w; weight != 0 {
			vec[t] = weight
		}
	}
	return vec
}
