package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySection    = "section"
	KeyMode       = "mode"
	KeyTone       = "tone"
	KeySubmission = "submission"
	KeySession    = "session_id"
	KeyDurationMS = "duration_ms"
	KeyStatus     = "status"
	KeyField      = "field"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Mode(m string) slog.Attr         { return slog.String(KeyMode, m) }
func Tone(t string) slog.Attr         { return slog.String(KeyTone, t) }
func Submission(n uint64) slog.Attr   { return slog.Uint64(KeySubmission, n) }
func SessionID(id string) slog.Attr   { return slog.String(KeySession, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Status(s string) slog.Attr       { return slog.String(KeyStatus, s) }
func Field(f string) slog.Attr        { return slog.String(KeyField, f) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
