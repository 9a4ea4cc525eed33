package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docugen/internal/export"
)

// ExportCmd packages previously generated sections as a zip archive or
// pushes them to the configured remote documentation space.
type ExportCmd struct {
	DocsDir string `short:"d" name:"docs-dir" help:"Directory holding the generated sections" default:"./docs"`
	Output  string `short:"o" help:"Archive output path" default:"documentation.zip"`
	Remote  bool   `name:"remote" help:"Push sections to the remote documentation space instead of archiving"`
}

func (e *ExportCmd) Run(_ *Global, root *CLI) error {
	snap, err := readDocs(e.DocsDir)
	if err != nil {
		return err
	}

	if e.Remote {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg, err := loadConfig(root.Config)
		if err != nil {
			return err
		}
		if err := cfg.ValidateForRemoteExport(); err != nil {
			return err
		}

		report, err := export.NewPusher(cfg.Remote).Push(ctx, snap)
		if err != nil {
			return err
		}
		for _, res := range report.Results {
			if res.Detail != "" {
				fmt.Printf("  %-12s %-22s %s\n", res.Section, res.Status, res.Detail)
			} else {
				fmt.Printf("  %-12s %s\n", res.Section, res.Status)
			}
		}
		if !report.Success() {
			return fmt.Errorf("remote export completed with failures")
		}
		fmt.Println("Remote export complete")
		return nil
	}

	result, err := export.Archive(snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(e.Output, result.Data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d sections)\n", e.Output, len(result.Entries))
	return nil
}
