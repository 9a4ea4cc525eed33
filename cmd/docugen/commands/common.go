package commands

import (
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/docugen/internal/config"
	"git.home.luguber.info/inful/docugen/internal/docset"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
	"git.home.luguber.info/inful/docugen/internal/input"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docugen.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init       InitCmd       `cmd:"" help:"Initialize a new configuration file"`
	Generate   GenerateCmd   `cmd:"" help:"Generate a full documentation set from a codebase input"`
	Regenerate RegenerateCmd `cmd:"" help:"Regenerate a single documentation section with a tone"`
	Export     ExportCmd     `cmd:"" help:"Export generated documentation as an archive or to a remote space"`
	Serve      ServeCmd      `cmd:"" help:"Start the HTTP API server"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// sourceFlags are the mutually exclusive codebase inputs shared by commands
// that need a canonical source.
type sourceFlags struct {
	URL           string `name:"url" help:"Repository URL (github.com or gitlab.com)"`
	File          string `name:"file" help:"Path to a codebase archive to upload" type:"existingfile"`
	Text          string `name:"text" help:"Pasted codebase content"`
	TextFile      string `name:"text-file" help:"Read pasted codebase content from a file" type:"existingfile"`
	UIDescription string `name:"ui-description" help:"Natural-language UI description"`
	UIOnly        bool   `name:"ui-only" help:"Generate UI-focused documentation from the description alone"`
}

// submission assembles an input.Submission from the flags. Exactly which
// fields are required is the normalizer's call.
func (f *sourceFlags) submission() (input.Submission, error) {
	sub := input.Submission{
		URL:           f.URL,
		Text:          f.Text,
		UIDescription: f.UIDescription,
	}

	if f.TextFile != "" {
		data, err := os.ReadFile(f.TextFile)
		if err != nil {
			return sub, derrors.ValidationFailed(input.FieldText, "unable to read text file: "+err.Error())
		}
		sub.Text = string(data)
	}

	if f.File != "" {
		data, err := os.ReadFile(f.File)
		if err != nil {
			return sub, derrors.ValidationFailed(input.FieldFile, "unable to read file: "+err.Error())
		}
		ct := mime.TypeByExtension(filepath.Ext(f.File))
		if ct == "" {
			ct = "application/octet-stream"
		}
		sub.File = &input.FileUpload{
			Name:        filepath.Base(f.File),
			ContentType: ct,
			Data:        data,
		}
	}

	switch {
	case sub.URL != "":
		sub.Kind = input.KindURL
	case sub.File != nil:
		sub.Kind = input.KindFile
	case sub.Text != "":
		sub.Kind = input.KindText
	default:
		sub.Kind = input.KindUIDescription
	}
	return sub, nil
}

func loadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

// writeDocs writes each non-empty section to its canonical filename under dir.
func writeDocs(dir string, snap docset.Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return derrors.Wrap(err, derrors.CategoryExport, derrors.SeverityError, "unable to create output directory")
	}
	for _, section := range docset.Sections {
		content := snap[section]
		if content == "" {
			continue
		}
		path := filepath.Join(dir, docset.Filenames[section])
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return derrors.Wrap(err, derrors.CategoryExport, derrors.SeverityError, "unable to write "+path)
		}
	}
	return nil
}

// readDocs loads previously written section files from dir. Missing files
// leave the section empty.
func readDocs(dir string) (docset.Snapshot, error) {
	snap := docset.Snapshot{}
	found := false
	for _, section := range docset.Sections {
		data, err := os.ReadFile(filepath.Join(dir, docset.Filenames[section]))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CategoryValidation, derrors.SeverityError, "unable to read "+docset.Filenames[section])
		}
		snap[section] = string(data)
		found = true
	}
	if !found {
		return nil, derrors.ValidationFailed("docs-dir", "no documentation sections found in "+dir)
	}
	return snap, nil
}
