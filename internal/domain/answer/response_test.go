package answer

import (
	"strings"
	"testing"
)

func TestText_Confident(t *testing.T) {
	r := Confident("What are your hours?", "9 to 5.", 0.8)

	if r.Text() != "9 to 5." {
		t.Errorf("confident text must be the answer alone, got %q", r.Text())
	}
	if r.Outcome() != OutcomeConfident {
		t.Errorf("outcome: got %s", r.Outcome())
	}
}

func TestText_Uncertain(t *testing.T) {
	r := Uncertain("What are your hours?", "9 to 5.", 0.3, []Suggestion{
		{Question: "What are your hours?", Score: 0.3},
	})

	text := r.Text()
	if !strings.Contains(text, `"What are your hours?"`) {
		t.Errorf("uncertain text must quote the closest question, got %q", text)
	}
	if !strings.Contains(text, "Best guess: 9 to 5.") {
		t.Errorf("uncertain text must carry the best guess, got %q", text)
	}
}

func TestText_NoData(t *testing.T) {
	r := NoData()

	if !strings.Contains(r.Text(), "couldn't find a relevant question") {
		t.Errorf("no_data text: got %q", r.Text())
	}
	if r.Answer() != "" || r.Question() != "" {
		t.Error("no_data response must not carry an answer or question")
	}
}
