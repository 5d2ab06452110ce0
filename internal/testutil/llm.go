package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/readynurse/internal/llm"
)

// StubLLM is an llm.LLMClient that returns canned responses. Responses are
// consumed in order; the last one repeats.
type StubLLM struct {
	Responses []string
	Err       error

	mu       sync.Mutex
	calls    int
	requests []llm.GenerateRequest
}

// NewStubLLM returns a StubLLM serving the given responses.
func NewStubLLM(responses ...string) *StubLLM {
	return &StubLLM{Responses: responses}
}

func (s *StubLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Responses) == 0 {
		return &llm.GenerateResponse{Text: `{"items":[]}`, Model: "stub"}, nil
	}
	i := min(s.calls-1, len(s.Responses)-1)
	return &llm.GenerateResponse{Text: s.Responses[i], Model: "stub"}, nil
}

func (s *StubLLM) Available(context.Context) bool { return s.Err == nil }

// Requests returns the requests received so far.
func (s *StubLLM) Requests() []llm.GenerateRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.GenerateRequest(nil), s.requests...)
}
