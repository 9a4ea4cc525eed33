// Package pipeline orchestrates one documentation session: input
// normalization, full generation, per-section regeneration and edits, and
// export. A Session owns its CanonicalInput and DocumentSet exclusively; no
// state is shared across sessions.
package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docugen/internal/docset"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
	"git.home.luguber.info/inful/docugen/internal/export"
	"git.home.luguber.info/inful/docugen/internal/input"
	"git.home.luguber.info/inful/docugen/internal/llm"
	"git.home.luguber.info/inful/docugen/internal/logfields"
	"git.home.luguber.info/inful/docugen/internal/metrics"
	"git.home.luguber.info/inful/docugen/internal/prompt"
)

// Packager serializes the current snapshot into a downloadable archive.
type Packager func(docset.Snapshot) (*export.ArchiveResult, error)

// RemotePusher pushes the current snapshot to the remote space.
type RemotePusher interface {
	Push(ctx context.Context, snap docset.Snapshot) (*export.PushReport, error)
}

// Session drives the generation/regeneration/export pipeline for one user
// interaction. Regeneration and export are serialized per operation type; a
// newer full-generation submission supersedes an older one, whose late
// response is discarded by submission token.
type Session struct {
	ID string

	normalizer *input.Normalizer
	capability llm.Capability
	packager   Packager
	pusher     RemotePusher
	recorder   metrics.Recorder

	mu           sync.Mutex
	canonical    *input.CanonicalInput
	docs         *docset.DocumentSet
	token        uint64 // latest full-generation submission
	regenSection docset.Section
	regenActive  bool
	exportActive bool
}

// Options configures a Session. Capability and Normalizer are required;
// Packager, Pusher, and Recorder default to the archive packager, no remote
// target, and the noop recorder.
type Options struct {
	Normalizer *input.Normalizer
	Capability llm.Capability
	Packager   Packager
	Pusher     RemotePusher
	Recorder   metrics.Recorder
}

// NewSession constructs a Session.
func NewSession(opts Options) *Session {
	if opts.Packager == nil {
		opts.Packager = export.Archive
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	return &Session{
		ID:         uuid.NewString(),
		normalizer: opts.Normalizer,
		capability: opts.Capability,
		packager:   opts.Packager,
		pusher:     opts.Pusher,
		recorder:   opts.Recorder,
		docs:       docset.New(),
	}
}

// Documents returns a stable snapshot of the current document set.
func (s *Session) Documents() docset.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs.Snapshot()
}

// Generated reports whether a full generation has produced content.
func (s *Session) Generated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs.Generated()
}

// Generate runs a full generation: normalize the submission, clear the
// document set, call the capability once, and commit all four sections
// atomically. The single capability call is the only blocking step and is
// never retried here.
//
// Overlapping submissions are legal: each carries a monotonically increasing
// token and a response is committed only while its token is still the most
// recent, so a slow earlier call can never overwrite a newer result.
func (s *Session) Generate(ctx context.Context, sub input.Submission, uiOnly bool) (docset.Snapshot, error) {
	ci, err := s.normalizer.Normalize(ctx, sub, uiOnly)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.token++
	token := s.token
	s.canonical = &ci
	// Clearing before the call guarantees no stale cross-submission content
	// is observable while the call is pending.
	s.docs.Clear()
	s.mu.Unlock()

	req := prompt.BuildGeneration(ci)
	slog.Info("Starting full generation",
		logfields.SessionID(s.ID),
		logfields.Mode(string(ci.Mode)),
		logfields.Submission(token))

	start := time.Now()
	payload, err := s.capability.Generate(ctx, req)
	elapsed := time.Since(start)
	s.recorder.ObserveGenerationDuration(string(ci.Mode), elapsed)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.token {
		// A newer submission superseded this one while the call was in
		// flight; its response must not be observable.
		s.recorder.IncGenerationResult(string(ci.Mode), metrics.ResultStale)
		slog.Warn("Discarding stale generation response",
			logfields.SessionID(s.ID),
			logfields.Submission(token))
		return nil, stale(token)
	}

	if err != nil {
		// The document set stays cleared, as committed before the call.
		result := metrics.ResultFailed
		if derrors.IsCategory(err, derrors.CategorySchema) {
			result = metrics.ResultSchema
			slog.Error("Capability response violated schema",
				logfields.SessionID(s.ID),
				logfields.Error(err))
		}
		s.recorder.IncGenerationResult(string(ci.Mode), result)
		return nil, err
	}

	s.docs.ReplaceAll(payload.Readme, payload.APIDocs, payload.UserManual, payload.FAQ)
	s.recorder.IncGenerationResult(string(ci.Mode), metrics.ResultSuccess)
	slog.Info("Full generation committed",
		logfields.SessionID(s.ID),
		logfields.Submission(token),
		logfields.DurationMS(float64(elapsed.Milliseconds())))
	return s.docs.Snapshot(), nil
}

// Regenerate replaces exactly one section with a retoned variant. The
// canonical input of the last full generation is reused as context; the
// current (possibly edited) documents are never fed back. One regeneration
// at a time.
func (s *Session) Regenerate(ctx context.Context, section docset.Section, tone docset.Tone, custom string) (string, error) {
	s.mu.Lock()
	if s.canonical == nil {
		s.mu.Unlock()
		return "", derrors.New(derrors.CategoryRuntime, derrors.SeverityError, "no generation context: run a full generation first")
	}
	if s.regenActive {
		s.mu.Unlock()
		return "", inFlight("regenerate")
	}
	// The gate must be taken in the same critical section as the check, or
	// two concurrent calls could both pass it.
	s.regenActive = true
	s.regenSection = section
	ci := *s.canonical
	token := s.token
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.regenActive = false
		s.regenSection = ""
		s.mu.Unlock()
	}()

	req, err := prompt.BuildRegeneration(ci, section, tone, custom)
	if err != nil {
		return "", err
	}

	slog.Info("Starting regeneration",
		logfields.SessionID(s.ID),
		logfields.Section(string(section)),
		logfields.Tone(string(tone)))

	content, err := s.capability.Regenerate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		result := metrics.ResultFailed
		if derrors.IsCategory(err, derrors.CategorySchema) {
			result = metrics.ResultSchema
		}
		s.recorder.IncRegenerationResult(string(section), string(tone), result)
		return "", err
	}
	if token != s.token {
		// A full generation superseded the context this regeneration used.
		s.recorder.IncRegenerationResult(string(section), string(tone), metrics.ResultStale)
		return "", stale(token)
	}

	s.docs.Replace(section, content)
	s.recorder.IncRegenerationResult(string(section), string(tone), metrics.ResultSuccess)
	return content, nil
}

// EditSection overwrites one section with user-supplied text, bypassing the
// capability. Editing a section that is being regenerated is a usage error.
func (s *Session) EditSection(section docset.Section, markdown string) error {
	if _, err := docset.ParseSection(string(section)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.regenActive && s.regenSection == section {
		return derrors.New(derrors.CategoryRuntime, derrors.SeverityWarning, "section is being regenerated").
			WithContext("section", string(section))
	}
	s.docs.Edit(section, markdown)
	return nil
}

// ExportArchive packages the current snapshot into a downloadable archive.
// Fast and local; serialized with other exports.
func (s *Session) ExportArchive() (*export.ArchiveResult, error) {
	release, err := s.acquireExport()
	if err != nil {
		return nil, err
	}
	defer release()

	result, err := s.packager(s.Documents())
	s.recorder.IncExportResult("archive", err == nil)
	return result, err
}

// ExportRemote pushes the current snapshot to the remote documentation
// space, one sequential upsert per section with independent failures.
func (s *Session) ExportRemote(ctx context.Context) (*export.PushReport, error) {
	if s.pusher == nil {
		return nil, derrors.ConfigMissing("remote")
	}

	release, err := s.acquireExport()
	if err != nil {
		return nil, err
	}
	defer release()

	report, err := s.pusher.Push(ctx, s.Documents())
	if err != nil {
		s.recorder.IncExportResult("remote", false)
		return nil, err
	}
	for _, res := range report.Results {
		s.recorder.IncSectionPush(string(res.Status))
	}
	s.recorder.IncExportResult("remote", report.Success())
	return report, nil
}

func (s *Session) acquireExport() (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exportActive {
		return nil, inFlight("export")
	}
	s.exportActive = true
	return func() {
		s.mu.Lock()
		s.exportActive = false
		s.mu.Unlock()
	}, nil
}

func inFlight(op string) error {
	return derrors.New(derrors.CategoryRuntime, derrors.SeverityWarning, "operation already in flight").
		WithContext("operation", op)
}

func stale(token uint64) error {
	return derrors.New(derrors.CategoryRuntime, derrors.SeverityInfo, "response superseded by a newer submission").
		WithContext("submission", token)
}
