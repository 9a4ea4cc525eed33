package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docugen/internal/docset"
	"git.home.luguber.info/inful/docugen/internal/export"
	"git.home.luguber.info/inful/docugen/internal/input"
	"git.home.luguber.info/inful/docugen/internal/llm"
	"git.home.luguber.info/inful/docugen/internal/logfields"
	"git.home.luguber.info/inful/docugen/internal/pipeline"
)

// GenerateCmd implements the one-shot 'generate' command: normalize the
// input, generate all four sections, and write them out.
type GenerateCmd struct {
	sourceFlags

	Output  string `short:"o" help:"Output directory for documentation sections" default:"./docs"`
	Archive string `name:"archive" help:"Write a zip archive to this path instead of individual files"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

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

	session := pipeline.NewSession(pipeline.Options{
		Normalizer: input.NewNormalizer(cfg.Input),
		Capability: capability,
	})

	sub, err := g.submission()
	if err != nil {
		return err
	}

	slog.Info("Starting documentation generation",
		"kind", string(sub.Kind),
		"ui_only", g.UIOnly,
		logfields.SessionID(session.ID))

	snap, err := session.Generate(ctx, sub, g.UIOnly)
	if err != nil {
		return err
	}

	if g.Archive != "" {
		result, err := export.Archive(snap)
		if err != nil {
			return err
		}
		if err := os.WriteFile(g.Archive, result.Data, 0o644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d sections)\n", g.Archive, len(result.Entries))
		return nil
	}

	if err := writeDocs(g.Output, snap); err != nil {
		return err
	}
	for _, section := range docset.Sections {
		fmt.Printf("  %s\n", docset.Filenames[section])
	}
	fmt.Printf("Documentation written to %s\n", g.Output)
	return nil
}
