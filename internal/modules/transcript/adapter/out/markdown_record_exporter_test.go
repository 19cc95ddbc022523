package out

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"courtdesk/internal/modules/transcript/domain"
	"courtdesk/internal/platform/markdown"
)

func exportRecord(id string) domain.Record {
	return domain.Record{
		ID:         id,
		CaseNumber: "2025-CR-001",
		CaseTitle:  "State vs. John Smith",
		Date:       "2025-03-14",
		Duration:   "00:10:00",
		Language:   "en",
		ClerkName:  "Sarah Johnson",
		Status:     domain.StatusCompleted,
		Entries: []domain.Entry{
			{ID: "e1", Timestamp: "09:00:00", Speaker: domain.SpeakerJudge, Text: "Court is in session.", Confidence: 95, IsBookmarked: true},
		},
	}
}

func TestExportWritesFrontmatterUnderDateDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	exporter := NewMarkdownRecordExporter(dir)

	path, err := exporter.Export(context.Background(), exportRecord("0a1b2c3d-aaaa"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if want := filepath.Join(dir, "2025", "03", "14", "2025-cr-001-0a1b2c3d.md"); path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var meta exportMeta
	body, err := markdown.Split(string(raw), &meta)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta.ID != "0a1b2c3d-aaaa" || meta.Entries != 1 || meta.Bookmarks != 1 || meta.SchemaVersion != exportSchemaVersion {
		t.Fatalf("unexpected frontmatter %+v", meta)
	}
	if !strings.Contains(body, "# State vs. John Smith") || !strings.Contains(body, "★") {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestExportKeepsRecordsSharingShortID(t *testing.T) {
	t.Parallel()
	exporter := NewMarkdownRecordExporter(t.TempDir())
	ctx := context.Background()

	first, err := exporter.Export(ctx, exportRecord("0a1b2c3d-aaaa"))
	if err != nil {
		t.Fatalf("export first: %v", err)
	}
	second, err := exporter.Export(ctx, exportRecord("0a1b2c3d-bbbb"))
	if err != nil {
		t.Fatalf("export second: %v", err)
	}
	if first == second || filepath.Base(second) != "2025-cr-001-0a1b2c3d-bbbb.md" {
		t.Fatalf("second export should not overwrite the first: %s %s", first, second)
	}
	again, err := exporter.Export(ctx, exportRecord("0a1b2c3d-aaaa"))
	if err != nil || again != first {
		t.Fatalf("re-export should reuse its own file, got %s %v", again, err)
	}
}

func TestExportRejectsCorruptExistingFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "2025", "03", "14")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "2025-cr-001-0a1b2c3d.md"), []byte("---\nid: [broken\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := NewMarkdownRecordExporter(dir).Export(context.Background(), exportRecord("0a1b2c3d-aaaa")); err == nil {
		t.Fatalf("expected an error for an unreadable existing export")
	}
}
