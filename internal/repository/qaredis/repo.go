// Package qaredis loads QA pairs from Redis hashes.
//
// Pairs are stored one per hash under <prefix>qa:<seq> with fields
// seq, question, answer. The seq field keeps the corpus order stable
// across SCAN, which returns keys in arbitrary order.
package qaredis

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/kailas-cloud/faqdex/internal/domain"
	"github.com/kailas-cloud/faqdex/internal/domain/corpus"
)

const (
	// FieldSeq is the hash field holding the insertion position.
	FieldSeq = "seq"
	// FieldQuestion is the hash field holding the question text.
	FieldQuestion = "question"
	// FieldAnswer is the hash field holding the answer text.
	FieldAnswer = "answer"
)

// store is the consumer interface for the QA repository (ISP).
type store interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
}

// Repo implements a Redis-backed QA source.
type Repo struct {
	store  store
	prefix string
}

// New creates a Redis-backed QA source.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

// Key returns the hash key for a pair at the given position.
func Key(prefix string, seq int) string {
	return fmt.Sprintf("%sqa:%d", prefix, seq)
}

// Pattern returns the SCAN pattern covering all QA keys under the prefix.
func Pattern(prefix string) string {
	return prefix + "qa:*"
}

// Load scans the key prefix, fetches all hashes in one round-trip and
// returns pairs ordered by their seq field. Hashes with a missing or
// unparsable seq, question or answer are dropped.
func (r *Repo) Load(ctx context.Context) ([]corpus.Pair, error) {
	keys, err := r.store.Scan(ctx, Pattern(r.prefix))
	if err != nil {
		return nil, fmt.Errorf("scan qa keys: %w: %w", domain.ErrSourceUnavailable, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch qa hashes: %w: %w", domain.ErrSourceUnavailable, err)
	}

	type seqPair struct {
		seq  int
		pair corpus.Pair
	}
	loaded := make([]seqPair, 0, len(hashes))
	for _, h := range hashes {
		seq, err := strconv.Atoi(h[FieldSeq])
		if err != nil {
			continue
		}
		q, a := h[FieldQuestion], h[FieldAnswer]
		if q == "" || a == "" {
			continue
		}
		loaded = append(loaded, seqPair{seq: seq, pair: corpus.Pair{Question: q, Answer: a}})
	}

	sort.Slice(loaded, func(i, j int) bool { return loaded[i].seq < loaded[j].seq })

	pairs := make([]corpus.Pair, len(loaded))
	for i, sp := range loaded {
		pairs[i] = sp.pair
	}
	return pairs, nil
}
