// Package llm is the boundary to the external generation capability. The
// capability is opaque: given a structured request it returns the fixed
// four-section payload or fails. No retries, no internal timeout; both
// policies belong to the caller.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docugen/internal/docset"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
	"git.home.luguber.info/inful/docugen/internal/markdown"
	"git.home.luguber.info/inful/docugen/internal/prompt"
)

// SectionPayload is the fixed response shape of a full generation. All four
// fields are mandatory; absence is a schema violation.
type SectionPayload struct {
	Readme     string `json:"readme"`
	APIDocs    string `json:"apiDocs"`
	UserManual string `json:"userManual"`
	FAQ        string `json:"faq"`
}

// Get returns the payload field for a section.
func (p *SectionPayload) Get(section docset.Section) string {
	switch section {
	case docset.SectionReadme:
		return p.Readme
	case docset.SectionAPIDocs:
		return p.APIDocs
	case docset.SectionUserManual:
		return p.UserManual
	case docset.SectionFAQ:
		return p.FAQ
	}
	return ""
}

// Capability is the consumed interface of the generation service.
type Capability interface {
	// Generate produces all four sections from one request.
	Generate(ctx context.Context, req prompt.GenerationRequest) (*SectionPayload, error)
	// Regenerate produces a full replacement for one section.
	Regenerate(ctx context.Context, req prompt.RegenerationRequest) (string, error)
}

// DecodePayload parses a raw capability response into the four-section
// payload, enforcing the schema. A missing or empty key fails the whole
// attempt; partial results are never accepted.
func DecodePayload(raw string) (*SectionPayload, error) {
	body := stripFences(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil, derrors.SchemaViolation(fmt.Sprintf("response is not a JSON object: %v", err))
	}

	payload := &SectionPayload{}
	targets := map[docset.Section]*string{
		docset.SectionReadme:     &payload.Readme,
		docset.SectionAPIDocs:    &payload.APIDocs,
		docset.SectionUserManual: &payload.UserManual,
		docset.SectionFAQ:        &payload.FAQ,
	}
	for _, section := range docset.Sections {
		rawField, ok := fields[string(section)]
		if !ok {
			return nil, derrors.SchemaViolation(fmt.Sprintf("response missing key %q", section))
		}
		var value string
		if err := json.Unmarshal(rawField, &value); err != nil {
			return nil, derrors.SchemaViolation(fmt.Sprintf("key %q is not a string", section))
		}
		if !markdown.HasContent([]byte(value)) {
			return nil, derrors.SchemaViolation(fmt.Sprintf("key %q has no content", section))
		}
		*targets[section] = value
	}
	return payload, nil
}

// DecodeRegenerated parses a regeneration response carrying exactly the
// regeneratedContent field.
func DecodeRegenerated(raw string) (string, error) {
	body := stripFences(raw)

	var resp struct {
		RegeneratedContent *string `json:"regeneratedContent"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return "", derrors.SchemaViolation(fmt.Sprintf("regeneration response is not a JSON object: %v", err))
	}
	if resp.RegeneratedContent == nil || !markdown.HasContent([]byte(*resp.RegeneratedContent)) {
		return "", derrors.SchemaViolation("regeneration response missing regeneratedContent")
	}
	return *resp.RegeneratedContent, nil
}

// stripFences removes a surrounding markdown code fence some models wrap
// around JSON output despite instructions.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
