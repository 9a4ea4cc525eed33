package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"git.home.luguber.info/inful/docugen/internal/config"
	"git.home.luguber.info/inful/docugen/internal/docset"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
	"git.home.luguber.info/inful/docugen/internal/logfields"
)

// Pusher performs per-section idempotent upserts into a remote documentation
// space. Upserts run sequentially in the fixed section order; one section's
// failure does not block the others.
type Pusher struct {
	cfg    config.RemoteConfig
	client *http.Client
}

// NewPusher builds a Pusher. The HTTP client timeout bounds a single upsert,
// not the whole export.
func NewPusher(cfg config.RemoteConfig) *Pusher {
	return &Pusher{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithClient overrides the HTTP client (tests).
func (p *Pusher) WithClient(c *http.Client) *Pusher {
	p.client = c
	return p
}

// upsertBody is the remote space's page payload.
type upsertBody struct {
	Markdown string `json:"markdown"`
}

// Push upserts every non-empty section. Missing credentials fail the whole
// export before any network call. Empty sections are recorded as skipped.
func (p *Pusher) Push(ctx context.Context, snap docset.Snapshot) (*PushReport, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	report := &PushReport{}
	for _, section := range docset.Sections {
		content := snap[section]
		path := section.Filename()

		if strings.TrimSpace(content) == "" {
			report.add(SectionResult{Section: section, Path: path, Status: PushSkipped})
			slog.Debug("Skipping empty section", logfields.Section(string(section)))
			continue
		}

		if err := p.upsert(ctx, path, content); err != nil {
			detail := err.Error()
			if dge, ok := err.(*derrors.DocugenError); ok {
				if d, ok := dge.Context["detail"].(string); ok {
					detail = d
				}
			}
			report.add(SectionResult{Section: section, Path: path, Status: PushFailed, Detail: detail})
			slog.Warn("Section upsert failed",
				logfields.Section(string(section)),
				logfields.Error(err))
			continue
		}

		report.add(SectionResult{Section: section, Path: path, Status: PushSuccess})
		slog.Info("Section upserted", logfields.Section(string(section)), logfields.Status(string(PushSuccess)))
	}

	return report, nil
}

func (p *Pusher) validate() error {
	if p.cfg.BaseURL == "" {
		return derrors.ConfigMissing("remote.base_url")
	}
	if p.cfg.Token == "" {
		return derrors.ConfigMissing("remote.token")
	}
	if p.cfg.Space == "" {
		return derrors.ConfigMissing("remote.space")
	}
	return nil
}

// upsert PUTs one section page. Any 2xx is success; failure carries the
// provider status code and message verbatim.
func (p *Pusher) upsert(ctx context.Context, path, markdown string) error {
	url := fmt.Sprintf("%s/spaces/%s/pages/%s",
		strings.TrimSuffix(p.cfg.BaseURL, "/"), p.cfg.Space, path)

	body, err := json.Marshal(upsertBody{Markdown: markdown})
	if err != nil {
		return derrors.InternalError("failed to encode upsert body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return derrors.InternalError("failed to build upsert request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.cfg.Token)

	resp, err := p.client.Do(req)
	if err != nil {
		return derrors.RemotePushFailed(path, 0, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return derrors.RemotePushFailed(path, resp.StatusCode,
			fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}
	return nil
}
