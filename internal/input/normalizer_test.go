package input

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"git.home.luguber.info/inful/docugen/internal/config"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
)

func testConfig() config.InputConfig {
	return config.InputConfig{
		MinTextLength: 50,
		AllowedHosts:  []string{"github.com", "gitlab.com"},
	}
}

func failedField(t *testing.T, err error) string {
	t.Helper()
	dge, ok := err.(*derrors.DocugenError)
	if !ok {
		t.Fatalf("expected DocugenError, got %T: %v", err, err)
	}
	field, _ := dge.Context["field"].(string)
	return field
}

func TestNormalizeURL(t *testing.T) {
	n := NewNormalizer(testConfig())

	ci, err := n.Normalize(context.Background(), Submission{Kind: KindURL, URL: "https://github.com/acme/widgets"}, false)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if ci.Mode != ModeCode {
		t.Errorf("mode = %s, want code", ci.Mode)
	}
	if ci.Source != "https://github.com/acme/widgets" {
		t.Errorf("source = %q", ci.Source)
	}
}

func TestNormalizeURLRejections(t *testing.T) {
	n := NewNormalizer(testConfig())

	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"not http", "ssh://github.com/acme/widgets"},
		{"unknown host", "https://example.com/acme/widgets"},
		{"missing repo", "https://github.com/acme"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := n.Normalize(context.Background(), Submission{Kind: KindURL, URL: test.url}, false)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := failedField(t, err); got != FieldURL {
				t.Errorf("field = %q, want %q", got, FieldURL)
			}
		})
	}
}

func TestNormalizeURLProbe(t *testing.T) {
	cfg := testConfig()
	cfg.VerifyURL = true

	called := false
	n := NewNormalizer(cfg).WithProber(func(ctx context.Context, rawURL string) error {
		called = true
		return nil
	})

	if _, err := n.Normalize(context.Background(), Submission{Kind: KindURL, URL: "https://github.com/acme/widgets"}, false); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !called {
		t.Error("prober was not invoked with verify_url enabled")
	}

	n = NewNormalizer(cfg).WithProber(func(ctx context.Context, rawURL string) error {
		return fmt.Errorf("connection refused")
	})
	_, err := n.Normalize(context.Background(), Submission{Kind: KindURL, URL: "https://github.com/acme/widgets"}, false)
	if !derrors.IsCategory(err, derrors.CategoryNetwork) {
		t.Errorf("expected network error for unreachable remote, got %v", err)
	}
}

func TestNormalizeFileBecomesDataURI(t *testing.T) {
	n := NewNormalizer(testConfig())

	ci, err := n.Normalize(context.Background(), Submission{
		Kind: KindFile,
		File: &FileUpload{Name: "repo.zip", ContentType: "application/zip", Data: []byte("PK\x03\x04fake")},
	}, false)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !strings.HasPrefix(ci.Source, "data:application/zip;base64,") {
		t.Errorf("source is not a data URI: %q", ci.Source[:40])
	}
	if ci.Mode != ModeCode {
		t.Errorf("mode = %s, want code", ci.Mode)
	}
}

func TestNormalizeFileRejectsNonArchive(t *testing.T) {
	n := NewNormalizer(testConfig())

	_, err := n.Normalize(context.Background(), Submission{
		Kind: KindFile,
		File: &FileUpload{Name: "notes.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
	}, false)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := failedField(t, err); got != FieldFile {
		t.Errorf("field = %q, want %q", got, FieldFile)
	}
}

func TestNormalizeFileOctetStreamFallsBackToExtension(t *testing.T) {
	n := NewNormalizer(testConfig())

	_, err := n.Normalize(context.Background(), Submission{
		Kind: KindFile,
		File: &FileUpload{Name: "repo.tgz", ContentType: "application/octet-stream", Data: []byte("x")},
	}, false)
	if err != nil {
		t.Fatalf("tgz upload should be accepted: %v", err)
	}
}

func TestNormalizeTextMinimumLength(t *testing.T) {
	n := NewNormalizer(testConfig())

	// 60 characters of code passes the 50 character minimum.
	long := strings.Repeat("func main() {}\n", 4)
	ci, err := n.Normalize(context.Background(), Submission{Kind: KindText, Text: long}, false)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if ci.Mode != ModeCode {
		t.Errorf("mode = %s, want code", ci.Mode)
	}

	_, err = n.Normalize(context.Background(), Submission{Kind: KindText, Text: "short"}, false)
	if err == nil {
		t.Fatal("expected validation error for short snippet")
	}
	if got := failedField(t, err); got != FieldText {
		t.Errorf("field = %q, want %q", got, FieldText)
	}
}

func TestUIOnlyPrecedence(t *testing.T) {
	n := NewNormalizer(testConfig())

	// A populated URL must be ignored when ui-only mode is set.
	ci, err := n.Normalize(context.Background(), Submission{
		Kind:          KindURL,
		URL:           "https://github.com/acme/widgets",
		UIDescription: "A dashboard with three tabs and a settings dialog.",
	}, true)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if ci.Mode != ModeUI {
		t.Errorf("mode = %s, want ui", ci.Mode)
	}
	if ci.Source != "A dashboard with three tabs and a settings dialog." {
		t.Errorf("source should come only from the ui description, got %q", ci.Source)
	}
}

func TestUIOnlyEmptyDescriptionFails(t *testing.T) {
	n := NewNormalizer(testConfig())

	_, err := n.Normalize(context.Background(), Submission{
		Kind: KindURL,
		URL:  "https://github.com/acme/widgets",
	}, true)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := failedField(t, err); got != FieldUIDescription {
		t.Errorf("field = %q, want %q", got, FieldUIDescription)
	}
}
