package llm

import (
	"context"
	"sync"

	"git.home.luguber.info/inful/docugen/internal/prompt"
)

// Mock is a Capability for tests. It records requests and returns canned
// results, optionally delaying until released to exercise in-flight gating.
type Mock struct {
	mu sync.Mutex

	Payload      *SectionPayload
	Regenerated  string
	GenerateErr  error
	RegenererErr error

	GenerateCalls   []prompt.GenerationRequest
	RegenerateCalls []prompt.RegenerationRequest

	// Block, when non-nil, is received from before a call returns.
	Block chan struct{}
}

// NewMock returns a mock producing a plausible four-section payload.
func NewMock() *Mock {
	return &Mock{
		Payload: &SectionPayload{
			Readme:     "# Overview\n\nGenerated readme.",
			APIDocs:    "# API\n\nGenerated api docs.",
			UserManual: "# Manual\n\nGenerated manual.",
			FAQ:        "# FAQ\n\nGenerated faq.",
		},
		Regenerated: "# Regenerated\n\nRetoned section.",
	}
}

func (m *Mock) Generate(ctx context.Context, req prompt.GenerationRequest) (*SectionPayload, error) {
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, req)
	block := m.Block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	p := *m.Payload
	return &p, nil
}

func (m *Mock) Regenerate(ctx context.Context, req prompt.RegenerationRequest) (string, error) {
	m.mu.Lock()
	m.RegenerateCalls = append(m.RegenerateCalls, req)
	block := m.Block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.RegenererErr != nil {
		return "", m.RegenererErr
	}
	return m.Regenerated, nil
}
