package prompt

import (
	"reflect"
	"strings"
	"testing"

	"git.home.luguber.info/inful/docugen/internal/docset"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
	"git.home.luguber.info/inful/docugen/internal/input"
)

func TestTemplateSelectionByMode(t *testing.T) {
	codeReq := BuildGeneration(input.CanonicalInput{Source: "package main", Mode: input.ModeCode})
	uiReq := BuildGeneration(input.CanonicalInput{Source: "three tabs", Mode: input.ModeUI})

	if !strings.Contains(codeReq.System, "codebase") {
		t.Error("code template should mention codebase")
	}
	if !strings.Contains(uiReq.System, "user interface") {
		t.Error("ui template should mention user interface")
	}
	if !strings.Contains(uiReq.System, "screens and components") {
		t.Error("ui template should describe the screen catalog semantics")
	}

	// Both variants share the fixed four-key response contract.
	for _, req := range []GenerationRequest{codeReq, uiReq} {
		for _, key := range []string{`"readme"`, `"apiDocs"`, `"userManual"`, `"faq"`} {
			if !strings.Contains(req.System, key) {
				t.Errorf("system prompt missing response key %s", key)
			}
		}
	}
}

func TestBuildGenerationDeterminism(t *testing.T) {
	ci := input.CanonicalInput{Source: "https://github.com/acme/widgets", Mode: input.ModeCode}

	a := BuildGeneration(ci)
	b := BuildGeneration(ci)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs must yield structurally identical requests")
	}
}

func TestBuildRegeneration(t *testing.T) {
	ci := input.CanonicalInput{Source: "package main", Mode: input.ModeCode}

	req, err := BuildRegeneration(ci, docset.SectionFAQ, docset.ToneConcise, "")
	if err != nil {
		t.Fatalf("BuildRegeneration failed: %v", err)
	}
	if req.Section != docset.SectionFAQ || req.Tone != docset.ToneConcise {
		t.Errorf("request carries wrong target: %+v", req)
	}
	if !strings.Contains(req.System, `"faq"`) {
		t.Error("system prompt should name the target section")
	}
	if !strings.Contains(req.System, "concise") {
		t.Error("system prompt should name the tone")
	}
	if !strings.Contains(req.System, "regeneratedContent") {
		t.Error("system prompt should pin the single-field response contract")
	}
	if strings.Contains(req.User, "Additional instructions") {
		t.Error("custom block should be absent when no custom prompt given")
	}
}

func TestBuildRegenerationCustomPrompt(t *testing.T) {
	ci := input.CanonicalInput{Source: "package main", Mode: input.ModeCode}

	req, err := BuildRegeneration(ci, docset.SectionReadme, docset.ToneFormal, "emphasize security posture")
	if err != nil {
		t.Fatalf("BuildRegeneration failed: %v", err)
	}
	if !strings.Contains(req.User, "emphasize security posture") {
		t.Error("custom prompt should be carried in the user message")
	}
}

func TestBuildRegenerationRejectsUnknownTargets(t *testing.T) {
	ci := input.CanonicalInput{Source: "x", Mode: input.ModeCode}

	_, err := BuildRegeneration(ci, docset.Section("changelog"), docset.ToneConcise, "")
	if !derrors.IsCategory(err, derrors.CategoryValidation) {
		t.Errorf("expected validation error for unknown section, got %v", err)
	}

	_, err = BuildRegeneration(ci, docset.SectionFAQ, docset.Tone("sarcastic"), "")
	if !derrors.IsCategory(err, derrors.CategoryValidation) {
		t.Errorf("expected validation error for unknown tone, got %v", err)
	}
}

func TestRegenerationUsesCanonicalInputNotDocuments(t *testing.T) {
	ci := input.CanonicalInput{Source: "original source", Mode: input.ModeCode}

	req, err := BuildRegeneration(ci, docset.SectionFAQ, docset.ToneConcise, "")
	if err != nil {
		t.Fatalf("BuildRegeneration failed: %v", err)
	}
	if req.Source != "original source" {
		t.Error("regeneration context must be the canonical input")
	}
}
