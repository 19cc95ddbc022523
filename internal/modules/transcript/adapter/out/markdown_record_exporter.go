package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"courtdesk/internal/modules/transcript/domain"
	transcriptout "courtdesk/internal/modules/transcript/port/out"
	"courtdesk/internal/platform/markdown"
	"courtdesk/internal/platform/slug"
)

const exportSchemaVersion = 1

type exportMeta struct {
	SchemaVersion int    `yaml:"schema_version"`
	ID            string `yaml:"id"`
	CaseNumber    string `yaml:"case_number"`
	CaseTitle     string `yaml:"case_title"`
	Date          string `yaml:"date"`
	Duration      string `yaml:"duration"`
	Language      string `yaml:"language"`
	ClerkName     string `yaml:"clerk_name"`
	Status        string `yaml:"status"`
	Entries       int    `yaml:"entries"`
	Bookmarks     int    `yaml:"bookmarks"`
}

// MarkdownRecordExporter writes a record as a markdown note under
// <dir>/YYYY/MM/DD.
type MarkdownRecordExporter struct {
	dir string
}

func NewMarkdownRecordExporter(dir string) transcriptout.RecordExporter {
	return &MarkdownRecordExporter{dir: dir}
}

func (e *MarkdownRecordExporter) Export(_ context.Context, record domain.Record) (string, error) {
	date, err := time.Parse("2006-01-02", record.Date)
	if err != nil {
		return "", fmt.Errorf("parse record date %q: %w", record.Date, err)
	}
	dir := filepath.Join(e.dir, date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	base := slug.Make(record.CaseNumber, "case")
	short := record.ID
	if len(short) > 8 {
		short = short[:8]
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.md", base, short))
	owner, err := exportOwner(path)
	if err != nil {
		return "", err
	}
	if owner != "" && owner != record.ID {
		// Another record shares the short id; fall back to the full one.
		path = filepath.Join(dir, fmt.Sprintf("%s-%s.md", base, slug.Make(record.ID, "record")))
	}

	bookmarks := 0
	for _, entry := range record.Entries {
		if entry.IsBookmarked {
			bookmarks++
		}
	}
	meta := exportMeta{
		SchemaVersion: exportSchemaVersion,
		ID:            record.ID,
		CaseNumber:    record.CaseNumber,
		CaseTitle:     record.CaseTitle,
		Date:          record.Date,
		Duration:      record.Duration,
		Language:      record.Language,
		ClerkName:     record.ClerkName,
		Status:        string(record.Status),
		Entries:       len(record.Entries),
		Bookmarks:     bookmarks,
	}
	rendered, err := markdown.Render(meta, renderBody(record))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// exportOwner returns the record id recorded in an existing export's
// frontmatter, or "" when path does not exist yet.
func exportOwner(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read existing export: %w", err)
	}
	var meta exportMeta
	if _, err := markdown.Split(string(raw), &meta); err != nil {
		return "", fmt.Errorf("existing export %s: %w", filepath.Base(path), err)
	}
	return meta.ID, nil
}

func renderBody(record domain.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", record.CaseTitle)
	fmt.Fprintf(&sb, "- Case: %s\n- Date: %s\n- Duration: %s\n- Clerk: %s\n\n## Transcript\n\n", record.CaseNumber, record.Date, record.Duration, record.ClerkName)
	for _, entry := range record.Entries {
		mark := ""
		if entry.IsBookmarked {
			mark = " ★"
		}
		fmt.Fprintf(&sb, "- `%s` **%s** (%d%%)%s: %s\n", entry.Timestamp, entry.Speaker, entry.Confidence, mark, entry.Text)
		if src := entry.Source(); src != entry.Text {
			fmt.Fprintf(&sb, "  - original: %s\n", src)
		}
	}
	return sb.String()
}
