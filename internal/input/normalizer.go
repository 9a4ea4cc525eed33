// Package input normalizes one of the four submission channels (repository
// URL, uploaded archive, pasted text, UI description) into the single
// canonical input string consumed by the generation capability.
package input

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"path"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/storage/memory"

	"git.home.luguber.info/inful/docugen/internal/config"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
)

// Mode selects the template family downstream consumers use.
type Mode string

const (
	ModeCode Mode = "code"
	ModeUI   Mode = "ui"
)

// Kind tags which submission channel carries the source.
type Kind string

const (
	KindURL           Kind = "url"
	KindFile          Kind = "file"
	KindText          Kind = "text"
	KindUIDescription Kind = "uiDescription"
)

// Submission field names reported by validation errors. These match the form
// fields of the calling layer.
const (
	FieldURL           = "githubUrl"
	FieldFile          = "codebaseFile"
	FieldText          = "codebaseInput"
	FieldUIDescription = "uiDescription"
)

// FileUpload carries an uploaded archive. Raw bytes never leave this package
// as a separate channel; they are folded into the canonical string.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// Submission is one tagged input.
type Submission struct {
	Kind          Kind
	URL           string
	File          *FileUpload
	Text          string
	UIDescription string
}

// CanonicalInput is the normalized source string plus the mode flag that
// selects the template family. It is immutable after creation; regeneration
// reuses the same value as context.
type CanonicalInput struct {
	Source string
	Mode   Mode
}

// RemoteProber checks that a repository URL is reachable. Injected so tests
// never touch the network.
type RemoteProber func(ctx context.Context, rawURL string) error

// Normalizer validates submissions and produces CanonicalInput.
type Normalizer struct {
	cfg    config.InputConfig
	prober RemoteProber
}

// NewNormalizer builds a Normalizer from input config. When cfg.VerifyURL is
// set, repository URLs are probed with a git remote listing.
func NewNormalizer(cfg config.InputConfig) *Normalizer {
	return &Normalizer{cfg: cfg, prober: listRemoteRefs}
}

// WithProber replaces the remote reachability probe.
func (n *Normalizer) WithProber(p RemoteProber) *Normalizer {
	n.prober = p
	return n
}

// Normalize converts a submission into CanonicalInput.
//
// When uiOnly is set, the UI description is the only source considered; the
// url/file/text fields are ignored even if populated.
func (n *Normalizer) Normalize(ctx context.Context, sub Submission, uiOnly bool) (CanonicalInput, error) {
	if uiOnly {
		desc := strings.TrimSpace(sub.UIDescription)
		if desc == "" {
			return CanonicalInput{}, derrors.ValidationFailed(FieldUIDescription, "ui description is required in ui-only mode")
		}
		return CanonicalInput{Source: desc, Mode: ModeUI}, nil
	}

	switch sub.Kind {
	case KindURL:
		return n.normalizeURL(ctx, sub.URL)
	case KindFile:
		return n.normalizeFile(sub.File)
	case KindText:
		return n.normalizeText(sub.Text)
	case KindUIDescription:
		return CanonicalInput{}, derrors.ValidationFailed(FieldUIDescription, "ui description submitted without ui-only mode")
	default:
		return CanonicalInput{}, derrors.ValidationFailed("kind", fmt.Sprintf("unknown submission kind %q", sub.Kind))
	}
}

func (n *Normalizer) normalizeURL(ctx context.Context, rawURL string) (CanonicalInput, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return CanonicalInput{}, derrors.ValidationFailed(FieldURL, "repository URL is empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return CanonicalInput{}, derrors.ValidationFailed(FieldURL, "repository URL must be an http(s) URL")
	}
	if !n.hostAllowed(u.Host) {
		return CanonicalInput{}, derrors.ValidationFailed(FieldURL, fmt.Sprintf("host %q is not a recognized repository host", u.Host))
	}
	owner, repo := splitRepoPath(u.Path)
	if owner == "" || repo == "" {
		return CanonicalInput{}, derrors.ValidationFailed(FieldURL, "repository URL must name an owner and a repository")
	}

	if n.cfg.VerifyURL && n.prober != nil {
		if err := n.prober(ctx, rawURL); err != nil {
			return CanonicalInput{}, derrors.URLUnreachable(rawURL, err)
		}
	}

	return CanonicalInput{Source: rawURL, Mode: ModeCode}, nil
}

func (n *Normalizer) normalizeFile(f *FileUpload) (CanonicalInput, error) {
	if f == nil || len(f.Data) == 0 {
		return CanonicalInput{}, derrors.ValidationFailed(FieldFile, "uploaded file is empty")
	}
	if !isArchiveContentType(f.ContentType, f.Name) {
		return CanonicalInput{}, derrors.ValidationFailed(FieldFile, fmt.Sprintf("content type %q is not an archive", f.ContentType))
	}

	ct := f.ContentType
	if ct == "" {
		ct = "application/zip"
	}
	// Self-describing data URI keeps the archive transportable as one string.
	source := fmt.Sprintf("data:%s;base64,%s", ct, base64.StdEncoding.EncodeToString(f.Data))
	return CanonicalInput{Source: source, Mode: ModeCode}, nil
}

func (n *Normalizer) normalizeText(text string) (CanonicalInput, error) {
	trimmed := strings.TrimSpace(text)
	min := n.cfg.MinTextLength
	if min <= 0 {
		min = config.DefaultMinTextLength
	}
	if len(trimmed) < min {
		return CanonicalInput{}, derrors.ValidationFailed(FieldText, fmt.Sprintf("pasted code must be at least %d characters", min))
	}
	return CanonicalInput{Source: trimmed, Mode: ModeCode}, nil
}

func (n *Normalizer) hostAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, allowed := range n.cfg.AllowedHosts {
		if host == strings.ToLower(allowed) || strings.HasSuffix(host, "."+strings.ToLower(allowed)) {
			return true
		}
	}
	return false
}

// splitRepoPath extracts owner and repository from a URL path like
// /owner/repo or /owner/repo.git.
func splitRepoPath(p string) (owner, repo string) {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	if len(parts) < 2 {
		return "", ""
	}
	repo = strings.TrimSuffix(parts[1], ".git")
	return parts[0], repo
}

// archiveContentTypes are accepted upload content types.
var archiveContentTypes = map[string]bool{
	"application/zip":              true,
	"application/x-zip-compressed": true,
	"application/gzip":             true,
	"application/x-gzip":           true,
	"application/x-tar":            true,
	"application/x-7z-compressed":  true,
}

func isArchiveContentType(ct, name string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if archiveContentTypes[ct] {
		return true
	}
	// Some browsers send application/octet-stream for archives; fall back to
	// the filename extension.
	if ct == "" || ct == "application/octet-stream" {
		switch strings.ToLower(path.Ext(name)) {
		case ".zip", ".gz", ".tgz", ".tar", ".7z":
			return true
		}
	}
	return false
}

// listRemoteRefs probes the remote by listing its references, the moral
// equivalent of `git ls-remote`. Nothing is cloned or parsed locally.
func listRemoteRefs(ctx context.Context, rawURL string) error {
	rem := gogit.NewRemote(memory.NewStorage(), &gitcfg.RemoteConfig{
		Name: "origin",
		URLs: []string{rawURL},
	})
	_, err := rem.ListContext(ctx, &gogit.ListOptions{})
	return err
}
