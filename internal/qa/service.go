package qa

import (
	"context"
	"time"

	"github.com/dkhromov/docboard/internal/common"
)

// Service answers questions against the document collection. Answers are
// canned: every question receives the same handbook response, echoed with
// the question text.
type Service interface {
	Items(ctx context.Context) ([]Item, error)
	Ask(ctx context.Context, question string) (*Response, error)
}

type service struct {
	items   []Item
	canned  Response
	latency time.Duration
}

func NewService(items []Item, latency time.Duration) Service {
	return &service{items: items, canned: cannedResponse(), latency: latency}
}

func (s *service) Items(ctx context.Context) ([]Item, error) {
	if err := common.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Ask resolves immediately; the canned answer is prefixed with the question
// so the echo is visible in the transcript.
func (s *service) Ask(ctx context.Context, question string) (*Response, error) {
	resp := s.canned
	resp.Answer = "Here's a response to your question: \"" + question + "\"\n\n" + s.canned.Answer
	resp.SourceDocuments = append([]SourceDocument(nil), s.canned.SourceDocuments...)
	return &resp, nil
}
