// Package answer defines the selector's response as a tagged value object,
// so callers branch on the outcome instead of sniffing response strings.
package answer

import "fmt"

// Outcome tags the selector decision.
type Outcome string

const (
	// OutcomeConfident means the top similarity met the threshold.
	OutcomeConfident Outcome = "confident"
	// OutcomeUncertain means no document met the threshold; the response
	// carries the best guess anyway.
	OutcomeUncertain Outcome = "uncertain"
	// OutcomeNoData means there was nothing to rank against.
	OutcomeNoData Outcome = "no_data"
)

const (
	uncertainMessage = "I'm sorry, I don't have specific information about that. " +
		"The closest question I can answer is: %q."
	noDataMessage = "I'm sorry, I couldn't find a relevant question. " +
		"Please try rephrasing your question."
)

// Suggestion is one candidate question offered on an uncertain match.
type Suggestion struct {
	Question string
	Score    float64
}

// Response is the selector's verdict (immutable value object).
type Response struct {
	outcome     Outcome
	answer      string
	question    string
	score       float64
	suggestions []Suggestion
}

// Confident creates a response for a match at or above the threshold.
func Confident(question, answerText string, score float64) Response {
	return Response{
		outcome:  OutcomeConfident,
		answer:   answerText,
		question: question,
		score:    score,
	}
}

// Uncertain creates a fallback response carrying the best guess and a small
// candidate list.
func Uncertain(question, answerText string, score float64, suggestions []Suggestion) Response {
	return Response{
		outcome:     OutcomeUncertain,
		answer:      answerText,
		question:    question,
		score:       score,
		suggestions: suggestions,
	}
}

// NoData creates the response for an empty ranked list.
func NoData() Response {
	return Response{outcome: OutcomeNoData}
}

// Outcome returns the decision tag.
func (r *Response) Outcome() Outcome { return r.outcome }

// Answer returns the selected answer text ("" for no_data).
func (r *Response) Answer() string { return r.answer }

// Question returns the matched question text ("" for no_data).
func (r *Response) Question() string { return r.question }

// Score returns the top similarity score.
func (r *Response) Score() float64 { return r.score }

// Suggestions returns candidate questions for an uncertain match.
func (r *Response) Suggestions() []Suggestion { return r.suggestions }

// Text renders the single response string the bot replies with.
func (r *Response) Text() string {
	switch r.outcome {
	case OutcomeConfident:
		return r.answer
	case OutcomeUncertain:
		return fmt.Sprintf(uncertainMessage, r.question) + "\nBest guess: " + r.answer
	default:
		return noDataMessage
	}
}
