package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/docugen/internal/docset"
	"git.home.luguber.info/inful/docugen/internal/input"
	"git.home.luguber.info/inful/docugen/internal/llm"
	"git.home.luguber.info/inful/docugen/internal/logfields"
	"git.home.luguber.info/inful/docugen/internal/prompt"
)

// RegenerateCmd reworks a single section of a previously generated set. The
// original source is needed again because the section is rewritten against it.
type RegenerateCmd struct {
	sourceFlags

	Section      string `arg:"" help:"Section to regenerate (readme, apiDocs, userManual, faq)"`
	Tone         string `name:"tone" help:"Tone for the regenerated section" default:"developer-friendly"`
	CustomPrompt string `name:"custom-prompt" help:"Extra instructions appended to the regeneration prompt"`
	DocsDir      string `short:"d" name:"docs-dir" help:"Directory holding the generated sections" default:"./docs"`
}

func (r *RegenerateCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	section, err := docset.ParseSection(r.Section)
	if err != nil {
		return err
	}
	tone, err := docset.ParseTone(r.Tone)
	if err != nil {
		return err
	}

	// Fail early if there is nothing to rework.
	if _, err := readDocs(r.DocsDir); err != nil {
		return err
	}

	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if err := cfg.ValidateForGeneration(); err != nil {
		return err
	}

	capability, err := llm.NewOpenAI(cfg.Provider)
	if err != nil {
		return err
	}

	sub, err := r.submission()
	if err != nil {
		return err
	}
	canonical, err := input.NewNormalizer(cfg.Input).Normalize(ctx, sub, r.UIOnly)
	if err != nil {
		return err
	}

	req, err := prompt.BuildRegeneration(canonical, section, tone, r.CustomPrompt)
	if err != nil {
		return err
	}

	slog.Info("Regenerating section", logfields.Section(string(section)), logfields.Tone(string(tone)))

	content, err := capability.Regenerate(ctx, req)
	if err != nil {
		return err
	}

	path := filepath.Join(r.DocsDir, docset.Filenames[section])
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	fmt.Printf("Rewrote %s\n", path)
	return nil
}
