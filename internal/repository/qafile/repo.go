// Package qafile loads QA pairs from a JSON file.
package qafile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/faqdex/internal/domain"
	"github.com/kailas-cloud/faqdex/internal/domain/corpus"
)

// qaFile mirrors the qa_data.json schema:
//
//	{"questions": [{"question": "...", "answer": "..."}]}
type qaFile struct {
	Questions []qaRecord `json:"questions"`
}

type qaRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Repo reads the QA corpus from a JSON file.
type Repo struct {
	path string
}

// New creates a file-backed QA source.
func New(path string) *Repo {
	return &Repo{path: path}
}

// Load reads and parses the file, returning pairs in file order.
// Records with a missing question or answer are dropped — malformed
// entries are a loader concern, the matching core assumes valid pairs.
func (r *Repo) Load(_ context.Context) ([]corpus.Pair, error) {
	data, err := os.ReadFile(filepath.Clean(r.path))
	if err != nil {
		return nil, fmt.Errorf("read qa file %s: %w: %w", r.path, domain.ErrSourceUnavailable, err)
	}

	var f qaFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse qa file %s: %w", r.path, err)
	}

	pairs := make([]corpus.Pair, 0, len(f.Questions))
	for _, rec := range f.Questions {
		if rec.Question == "" || rec.Answer == "" {
			continue
		}
		pairs = append(pairs, corpus.Pair{Question: rec.Question, Answer: rec.Answer})
	}

	return pairs, nil
}
