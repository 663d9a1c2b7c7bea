// Package chi exposes the answer API over HTTP.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	domans "github.com/kailas-cloud/faqdex/internal/domain/answer"
	"github.com/kailas-cloud/faqdex/internal/domain/corpus"
	answeruc "github.com/kailas-cloud/faqdex/internal/usecase/answer"
	healthuc "github.com/kailas-cloud/faqdex/internal/usecase/health"
)

// Error codes returned in the JSON error envelope.
const (
	CodeBadRequest    = "bad_request"
	CodeInternalError = "internal_error"
	CodeUnauthorized  = "unauthorized"
)

// maxQuestionSize caps the request body; a question is a sentence, not a document.
const maxQuestionSize = 16 << 10 // 16KB

// Server handles the answer API routes.
type Server struct {
	answers *answeruc.Service
	health  *healthuc.Service
	corpus  *corpus.Corpus
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	answers *answeruc.Service,
	health *healthuc.Service,
	c *corpus.Corpus,
	logger *zap.Logger,
) *Server {
	return &Server{answers: answers, health: health, corpus: c, logger: logger}
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/v1/answer", s.Answer)
	r.Get("/api/v1/questions", s.ListQuestions)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// AnswerRequest is the POST /api/v1/answer body.
type AnswerRequest struct {
	Question string `json:"question"`
}

// SuggestionItem is one candidate question on an uncertain match.
type SuggestionItem struct {
	Question string  `json:"question"`
	Score    float64 `json:"score"`
}

// AnswerResponse is the POST /api/v1/answer reply.
type AnswerResponse struct {
	Outcome         string           `json:"outcome"`
	Text            string           `json:"text"`
	Answer          string           `json:"answer,omitempty"`
	MatchedQuestion string           `json:"matched_question,omitempty"`
	Score           float64          `json:"score"`
	Suggestions     []SuggestionItem `json:"suggestions,omitempty"`
}

// QuestionItem is one corpus entry in the questions listing.
type QuestionItem struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuestionListResponse is the GET /api/v1/questions reply.
type QuestionListResponse struct {
	Items []QuestionItem `json:"items"`
	Total int            `json:"total"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Answer handles POST /api/v1/answer.
func (s *Server) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	body := http.MaxBytesReader(w, r.Body, maxQuestionSize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// An empty question is valid input — it takes the uncertain path by
	// definition, it is not a client error.
	resp := s.answers.Answer(r.Context(), req.Question)

	writeJSON(w, http.StatusOK, answerToResponse(resp))
}

// ListQuestions handles GET /api/v1/questions.
func (s *Server) ListQuestions(w http.ResponseWriter, _ *http.Request) {
	items := make([]QuestionItem, s.corpus.Len())
	for i := 0; i < s.corpus.Len(); i++ {
		doc := s.corpus.Doc(i)
		items[i] = QuestionItem{ID: doc.ID(), Question: doc.Question(), Answer: doc.Answer()}
	}

	writeJSON(w, http.StatusOK, QuestionListResponse{Items: items, Total: len(items)})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func answerToResponse(resp domans.Response) AnswerResponse {
	out := AnswerResponse{
		Outcome:         string(resp.Outcome()),
		Text:            resp.Text(),
		Answer:          resp.Answer(),
		MatchedQuestion: resp.Question(),
		Score:           resp.Score(),
	}
	if sugg := resp.Suggestions(); len(sugg) > 0 {
		out.Suggestions = make([]SuggestionItem, len(sugg))
		for i, sg := range sugg {
			out.Suggestions[i] = SuggestionItem{Question: sg.Question, Score: sg.Score}
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
