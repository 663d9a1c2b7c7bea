// Package answer implements the threshold-based answer selector over the
// immutable TF-IDF corpus.
package answer

import (
	"context"

	"go.uber.org/zap"

	domans "github.com/kailas-cloud/faqdex/internal/domain/answer"
	"github.com/kailas-cloud/faqdex/internal/domain/corpus"
	"github.com/kailas-cloud/faqdex/internal/domain/match"
	"github.com/kailas-cloud/faqdex/internal/domain/token"
	"github.com/kailas-cloud/faqdex/internal/logger"
	"github.com/kailas-cloud/faqdex/internal/metrics"
)

const (
	// DefaultThreshold mirrors the classic 0.5 cut-off: below it the bot
	// admits uncertainty instead of answering.
	DefaultThreshold = 0.5
	// DefaultMaxSuggestions caps the candidate list on an uncertain match.
	DefaultMaxSuggestions = 3
)

// Service answers free-text questions against a fixed corpus.
// The corpus is read-only after construction, so Answer is safe to call
// from concurrent requests.
type Service struct {
	corpus         *corpus.Corpus
	threshold      float64
	maxSuggestions int
}

// New creates an answer service. threshold <= 0 falls back to the default.
func New(c *corpus.Corpus, threshold float64) *Service {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Service{corpus: c, threshold: threshold, maxSuggestions: DefaultMaxSuggestions}
}

// WithMaxSuggestions configures the uncertain-match candidate list size.
func (s *Service) WithMaxSuggestions(n int) *Service {
	if n > 0 {
		s.maxSuggestions = n
	}
	return s
}

// Threshold returns the configured similarity cut-off.
func (s *Service) Threshold() float64 { return s.threshold }

// Answer matches one question and returns the selector's verdict.
// Pure function of (corpus, question): same input, same response. Every
// query yields a response — arithmetic edge cases (empty input, unknown
// terms, zero vectors) score 0 and take the uncertain path.
func (s *Service) Answer(ctx context.Context, question string) domans.Response {
	query := s.corpus.Vectorize(token.Tokenize(question))
	ranked := match.Rank(query, s.corpus)

	resp := s.decide(ranked)

	metrics.AnswersTotal.WithLabelValues(string(resp.Outcome())).Inc()
	metrics.MatchSimilarity.Observe(resp.Score())

	logger.FromContext(ctx).Debug("question answered",
		zap.String("outcome", string(resp.Outcome())),
		zap.Float64("score", resp.Score()),
		zap.Int("query_terms", len(query)),
	)

	return resp
}

// decide applies the threshold to the ranked list.
func (s *Service) decide(ranked []match.Match) domans.Response {
	if len(ranked) == 0 {
		return domans.NoData()
	}

	top := ranked[0]
	if top.Score() >= s.threshold {
		return domans.Confident(top.Question(), top.Answer(), top.Score())
	}

	limit := s.maxSuggestions
	if limit > len(ranked) {
		limit = len(ranked)
	}
	suggestions := make([]domans.Suggestion, limit)
	for i := 0; i < limit; i++ {
		suggestions[i] = domans.Suggestion{
			Question: ranked[i].Question(),
			Score:    ranked[i].Score(),
		}
	}

	return domans.Uncertain(top.Question(), top.Answer(), top.Score(), suggestions)
}
