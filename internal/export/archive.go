// Package export packages the current document set for hand-off: either a
// downloadable zip archive or per-section upserts into a remote
// documentation space.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docugen/internal/docset"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
	"git.home.luguber.info/inful/docugen/internal/markdown"
)

// Placeholder written for sections without content. The archive mode always
// contains all four entries; the remote mode skips empty sections instead.
const Placeholder = "_No content generated for this section._\n"

// ArchiveName is the download filename of the packaged archive.
const ArchiveName = "documentation.zip"

// MIMEType of the packaged archive.
const MIMEType = "application/zip"

// Entry describes one archive member.
type Entry struct {
	Title   string `json:"title"`
	Path    string `json:"path"`
	Content string `json:"-"`
}

// ArchiveResult is the packaged archive plus a text-transportable encoding
// for API boundaries that accept only text payloads.
type ArchiveResult struct {
	Filename string  `json:"filename"`
	MIMEType string  `json:"mimeType"`
	Entries  []Entry `json:"entries"`
	Data     []byte  `json:"-"`
	Base64   string  `json:"base64"`
}

var titleCaser = cases.Title(language.English)

// Archive serializes the snapshot into a zip with one entry per section
// under canonical filenames. Built fresh per call; nothing is persisted.
func Archive(snap docset.Snapshot) (*ArchiveResult, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	result := &ArchiveResult{Filename: ArchiveName, MIMEType: MIMEType}
	for _, section := range docset.Sections {
		content := snap[section]
		if strings.TrimSpace(content) == "" {
			content = Placeholder
		}

		entry := Entry{
			Title:   displayTitle(section, content),
			Path:    section.Filename(),
			Content: content,
		}
		result.Entries = append(result.Entries, entry)

		w, err := zw.Create(entry.Path)
		if err != nil {
			return nil, derrors.ArchiveFailed(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			return nil, derrors.ArchiveFailed(err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, derrors.ArchiveFailed(err)
	}

	result.Data = buf.Bytes()
	result.Base64 = base64.StdEncoding.EncodeToString(result.Data)
	return result, nil
}

// displayTitle derives a human title for an entry: the section's first H1
// when present, otherwise the title-cased section name.
func displayTitle(section docset.Section, content string) string {
	if h := markdown.FirstHeading([]byte(content)); h != "" {
		return h
	}
	switch section {
	case docset.SectionAPIDocs:
		return "API Documentation"
	case docset.SectionFAQ:
		return "FAQ"
	}
	return titleCaser.String(humanizeSection(section))
}

// humanizeSection splits a camelCase section identifier into words.
func humanizeSection(section docset.Section) string {
	var sb strings.Builder
	for i, r := range string(section) {
		if i > 0 && r >= 'A' && r <= 'Z' {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
