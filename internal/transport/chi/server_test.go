package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	domans "github.com/kailas-cloud/faqdex/internal/domain/answer"
	"github.com/kailas-cloud/faqdex/internal/domain/corpus"
	answeruc "github.com/kailas-cloud/faqdex/internal/usecase/answer"
	healthuc "github.com/kailas-cloud/faqdex/internal/usecase/health"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()

	c, err := corpus.Build([]corpus.Pair{
		{Question: "What are your hours?", Answer: "9 to 5."},
		{Question: "Where are you located?", Answer: "123 Main St."},
	})
	if err != nil {
		t.Fatalf("corpus.Build: %v", err)
	}

	srv := NewServer(
		answeruc.New(c, 0.5),
		healthuc.New(nil, c.Len()),
		c,
		zap.NewNop(),
	)

	r := chirouter.NewRouter()
	srv.Routes(r)
	return r
}

func TestAnswer_Confident(t *testing.T) {
	handler := testServer(t)

	body := strings.NewReader(`{"question": "What are your hours?"}`)
	req := httptest.NewRequest("POST", "/api/v1/answer", body)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	var resp AnswerResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Outcome != string(domans.OutcomeConfident) {
		t.Errorf("outcome: got %s, want confident (score %f)", resp.Outcome, resp.Score)
	}
	if resp.Answer != "9 to 5." {
		t.Errorf("answer: got %q, want %q", resp.Answer, "9 to 5.")
	}
	if resp.Text != "9 to 5." {
		t.Errorf("text: got %q, want the answer verbatim", resp.Text)
	}
}

func TestAnswer_UncertainCarriesSuggestions(t *testing.T) {
	handler := testServer(t)

	body := strings.NewReader(`{"question": "do you ship internationally"}`)
	req := httptest.NewRequest("POST", "/api/v1/answer", body)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	var resp AnswerResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Outcome != string(domans.OutcomeUncertain) {
		t.Errorf("outcome: got %s, want uncertain", resp.Outcome)
	}
	if len(resp.Suggestions) == 0 {
		t.Error("uncertain response should carry suggestions")
	}
}

func TestAnswer_EmptyQuestionIsAccepted(t *testing.T) {
	handler := testServer(t)

	body := strings.NewReader(`{"question": ""}`)
	req := httptest.NewRequest("POST", "/api/v1/answer", body)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	var resp AnswerResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Outcome != string(domans.OutcomeUncertain) {
		t.Errorf("outcome: got %s, want uncertain", resp.Outcome)
	}
	if resp.Score != 0 {
		t.Errorf("score: got %f, want 0", resp.Score)
	}
}

func TestAnswer_MalformedBody_400(t *testing.T) {
	handler := testServer(t)

	body := strings.NewReader(`{"question": `)
	req := httptest.NewRequest("POST", "/api/v1/answer", body)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != CodeBadRequest {
		t.Errorf("error code: got %s, want %s", errResp.Code, CodeBadRequest)
	}
}

func TestListQuestions(t *testing.T) {
	handler := testServer(t)

	req := httptest.NewRequest("GET", "/api/v1/questions", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	var resp QuestionListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("total: got %d, want 2", resp.Total)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("items: got %d, want 2", len(resp.Items))
	}
	if resp.Items[0].Question != "What are your hours?" || resp.Items[0].ID != 0 {
		t.Errorf("first item out of order: %+v", resp.Items[0])
	}
}

func TestHealthCheck_OK(t *testing.T) {
	handler := testServer(t)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != string(healthuc.Healthy) {
		t.Errorf("status: got %s, want %s", resp.Status, healthuc.Healthy)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := testServer(t)

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.Len() == 0 {
		t.Error("metrics body should not be empty")
	}
}
