package metrics

import "github.com/prometheus/client_golang/prometheus"

// Matcher Prometheus metrics.
var (
	AnswersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqdex",
			Name:      "answers_total",
			Help:      "Total answered questions by selector outcome",
		},
		[]string{"outcome"}, // "confident" / "uncertain" / "no_data"
	)

	MatchSimilarity = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "faqdex",
			Name:      "match_similarity",
			Help:      "Top cosine similarity per answered question",
			Buckets:   []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
		},
	)

	CorpusDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "faqdex",
			Name:      "corpus_documents",
			Help:      "Number of QA documents in the loaded corpus",
		},
	)
)

var matcherMetricsRegistered bool

// RegisterMatcherMetrics registers matcher metrics. Must be called once from main.
func RegisterMatcherMetrics() {
	if matcherMetricsRegistered {
		return
	}
	prometheus.MustRegister(AnswersTotal)
	prometheus.MustRegister(MatchSimilarity)
	prometheus.MustRegister(CorpusDocuments)
	matcherMetricsRegistered = true
}
