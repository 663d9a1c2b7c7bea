package faqdex

// Outcome classifies how an answer was produced.
type Outcome string

const (
	// OutcomeConfident means the best match cleared the threshold.
	OutcomeConfident Outcome = "confident"
	// OutcomeUncertain means the best match fell short of the threshold.
	OutcomeUncertain Outcome = "uncertain"
	// OutcomeNoData means the corpus produced no candidates at all.
	OutcomeNoData Outcome = "no_data"
)

// Suggestion is one candidate question on an uncertain match.
type Suggestion struct {
	Question string
	Score    float64
}

// Answer is the result of asking a question.
type Answer struct {
	Outcome         Outcome
	Text            string // user-facing text, always populated
	Answer          string // matched answer (empty on no_data)
	MatchedQuestion string
	Score           float64
	Suggestions     []Suggestion
}

// QA is one question-answer pair of the corpus.
type QA struct {
	Question string
	Answer   string
}

// HealthStatus represents the aggregated client health.
type HealthStatus struct {
	Status string            // "ok", "degraded"
	Checks map[string]string // component -> "ok"/"error"
}
