package faqdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/kailas-cloud/faqdex/internal/db/redis"
	"github.com/kailas-cloud/faqdex/internal/domain/corpus"
	logpkg "github.com/kailas-cloud/faqdex/internal/logger"
	"github.com/kailas-cloud/faqdex/internal/repository/qafile"
	"github.com/kailas-cloud/faqdex/internal/repository/qaredis"
	answeruc "github.com/kailas-cloud/faqdex/internal/usecase/answer"
	healthuc "github.com/kailas-cloud/faqdex/internal/usecase/health"
)

const defaultReadinessTimeout = 10 * time.Second

// pairSource abstracts the QA source so tests can substitute one.
type pairSource interface {
	Load(ctx context.Context) ([]corpus.Pair, error)
}

// Client is the faqdex SDK entry point.
type Client struct {
	store     *dbRedis.Store // nil for the file driver
	corpus    *corpus.Corpus
	answerSvc *answeruc.Service
	healthSvc *healthuc.Service
	logger    *zap.Logger
}

// New creates a faqdex Client and builds the corpus from the configured
// source. The provided context is used for the initial load.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix:      "faqdex:",
		threshold:      answeruc.DefaultThreshold,
		maxSuggestions: answeruc.DefaultMaxSuggestions,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	var source pairSource
	var store *dbRedis.Store
	var sourcePinger healthuc.SourcePinger

	switch cfg.driver {
	case "file":
		source = qafile.New(cfg.path)
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("faqdex: create redis store: %w", err)
		}
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("faqdex: redis not ready: %w", err)
		}
		store = s
		source = qaredis.New(s, cfg.keyPrefix)
		sourcePinger = s
	default:
		return nil, errors.New("faqdex: QA source required (use WithFile or WithRedis)")
	}

	if cfg.logger != nil {
		ctx = logpkg.ContextWithLogger(ctx, cfg.logger)
	}

	pairs, err := source.Load(ctx)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("faqdex: load QA pairs: %w", err)
	}

	c, err := corpus.Build(pairs)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("faqdex: build corpus: %w", err)
	}

	answerSvc := answeruc.New(c, cfg.threshold).WithMaxSuggestions(cfg.maxSuggestions)
	healthSvc := healthuc.New(sourcePinger, c.Len())

	return &Client{
		store:     store,
		corpus:    c,
		answerSvc: answerSvc,
		healthSvc: healthSvc,
		logger:    cfg.logger,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ask matches a question against the corpus and returns an answer.
func (c *Client) Ask(ctx context.Context, question string) Answer {
	if c.logger != nil {
		ctx = logpkg.ContextWithLogger(ctx, c.logger)
	}
	resp := c.answerSvc.Answer(ctx, question)

	out := Answer{
		Outcome:         Outcome(resp.Outcome()),
		Text:            resp.Text(),
		Answer:          resp.Answer(),
		MatchedQuestion: resp.Question(),
		Score:           resp.Score(),
	}
	for _, sg := range resp.Suggestions() {
		out.Suggestions = append(out.Suggestions, Suggestion{
			Question: sg.Question,
			Score:    sg.Score,
		})
	}
	return out
}

// Questions returns all QA pairs in corpus order.
func (c *Client) Questions() []QA {
	out := make([]QA, c.corpus.Len())
	for i := 0; i < c.corpus.Len(); i++ {
		doc := c.corpus.Doc(i)
		out[i] = QA{Question: doc.Question(), Answer: doc.Answer()}
	}
	return out
}

// Health checks the health of all client components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}
