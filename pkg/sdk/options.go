package faqdex

import "go.uber.org/zap"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver string // "file" or "redis"
	path   string

	addrs     []string
	password  string
	keyPrefix string

	threshold      float64
	maxSuggestions int

	logger *zap.Logger
}

// WithFile configures the client to load the corpus from a JSON file.
func WithFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "file"
		c.path = path
	})
}

// WithRedis configures the client to load the corpus from a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix sets the Redis key prefix. Default: "faqdex:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithThreshold sets the similarity cut-off for a confident answer.
// Default: 0.5.
func WithThreshold(t float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.threshold = t
	})
}

// WithMaxSuggestions caps the candidate list on an uncertain match.
// Default: 3.
func WithMaxSuggestions(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxSuggestions = n
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
