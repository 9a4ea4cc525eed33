// Package prompt builds schema-constrained requests for the generation
// capability. A tagged template variant owns the instructional text for each
// mode; the four-key response contract is shared so the rest of the pipeline
// stays mode-agnostic.
package prompt

import (
	"fmt"

	"git.home.luguber.info/inful/docugen/internal/docset"
	"git.home.luguber.info/inful/docugen/internal/input"
)

// responseContract is appended to every full-generation prompt. The semantic
// meaning of each key is template-dependent; the shape never is.
const responseContract = `Respond with a single valid JSON object and nothing else. The object must have exactly these four keys, each a non-empty markdown string:
{"readme": "...", "apiDocs": "...", "userManual": "...", "faq": "..."}`

// regenerationContract constrains a single-section regeneration response.
const regenerationContract = `Respond with a single valid JSON object and nothing else:
{"regeneratedContent": "..."}
The value is the complete markdown replacement for the section, never a diff or partial patch.`

const codeInstructions = `You are a technical writer generating documentation for a codebase. The input is source code, a repository reference, or an archived codebase. Produce:

1. "readme": a README-style overview covering purpose, key features, setup instructions, and usage examples.
2. "apiDocs": API or interface documentation listing endpoints or public functions and classes, with parameters, return values, and errors.
3. "userManual": an end-user manual explaining how to operate the software.
4. "faq": frequently asked questions with answers, derived from inferred code behavior.`

const uiInstructions = `You are a technical writer generating documentation for a user interface. The input is a UI description or a design-tool reference. Produce:

1. "readme": a UI overview covering purpose, layout, navigation, and design philosophy.
2. "apiDocs": a catalog of key screens and components, with their elements and interaction states.
3. "userManual": candidate user flows, each written as ordered steps.
4. "faq": UI-focused frequently asked questions with answers.`

// Template is the tagged variant selected by mode. Each variant owns its
// instructional text; both share the fixed four-key output contract.
type Template interface {
	Mode() input.Mode
	Instructions() string
}

type codeTemplate struct{}

func (codeTemplate) Mode() input.Mode     { return input.ModeCode }
func (codeTemplate) Instructions() string { return codeInstructions }

type uiTemplate struct{}

func (uiTemplate) Mode() input.Mode     { return input.ModeUI }
func (uiTemplate) Instructions() string { return uiInstructions }

// ForMode returns the template variant for the mode. Unknown modes fall back
// to the code template, matching the default submission path.
func ForMode(mode input.Mode) Template {
	if mode == input.ModeUI {
		return uiTemplate{}
	}
	return codeTemplate{}
}

// GenerationRequest is the structured request for a full generation.
type GenerationRequest struct {
	System string
	User   string
	Source string
	Mode   input.Mode
}

// RegenerationRequest asks for a retoned full replacement of one section.
type RegenerationRequest struct {
	System  string
	User    string
	Source  string
	Section docset.Section
	Tone    docset.Tone
}

// BuildGeneration constructs the mode-aware generation request. Identical
// inputs yield structurally identical requests.
func BuildGeneration(ci input.CanonicalInput) GenerationRequest {
	tpl := ForMode(ci.Mode)
	return GenerationRequest{
		System: tpl.Instructions() + "\n\n" + responseContract,
		User:   sourcePreamble(ci.Mode) + ci.Source,
		Source: ci.Source,
		Mode:   ci.Mode,
	}
}

// BuildRegeneration constructs a request that replaces exactly one named
// section with a variant in the given tone. The canonical input of the last
// full generation is reused as context so regenerated prose reflects the
// original source, not prior capability output.
func BuildRegeneration(ci input.CanonicalInput, section docset.Section, tone docset.Tone, custom string) (RegenerationRequest, error) {
	if _, err := docset.ParseSection(string(section)); err != nil {
		return RegenerationRequest{}, err
	}
	if _, err := docset.ParseTone(string(tone)); err != nil {
		return RegenerationRequest{}, err
	}

	tpl := ForMode(ci.Mode)
	system := fmt.Sprintf(`You are a technical writer revising one section of existing documentation.

%s

Regenerate only the %q section described above, written in a %s tone.

%s`, tpl.Instructions(), section, tone, regenerationContract)

	user := sourcePreamble(ci.Mode) + ci.Source
	if custom != "" {
		user += "\n\nAdditional instructions from the user:\n" + custom
	}

	return RegenerationRequest{
		System:  system,
		User:    user,
		Source:  ci.Source,
		Section: section,
		Tone:    tone,
	}, nil
}

func sourcePreamble(mode input.Mode) string {
	if mode == input.ModeUI {
		return "UI description:\n\n"
	}
	return "Codebase input:\n\n"
}
