package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"courtdesk/internal/modules/transcript/domain"

	_ "modernc.org/sqlite"
)

// SQLiteRecordProjector keeps a searchable copy of saved records. The local
// store stays the source of truth; Reset plus Upsert rebuilds it.
type SQLiteRecordProjector struct {
	db *sql.DB
}

func NewSQLiteRecordProjector(dbPath string) (*SQLiteRecordProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	p := &SQLiteRecordProjector{db: db}
	if err := p.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return p, nil
}

func (p *SQLiteRecordProjector) Close() error {
	return p.db.Close()
}

func (p *SQLiteRecordProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS records (
  id TEXT PRIMARY KEY,
  case_number TEXT NOT NULL,
  case_title TEXT NOT NULL,
  date TEXT NOT NULL,
  language TEXT NOT NULL,
  status TEXT NOT NULL,
  entry_count INTEGER NOT NULL,
  position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS record_entries (
  record_id TEXT NOT NULL,
  entry_id TEXT NOT NULL,
  speaker TEXT NOT NULL,
  text TEXT NOT NULL,
  original_text TEXT NOT NULL,
  PRIMARY KEY (record_id, entry_id)
);
CREATE INDEX IF NOT EXISTS idx_records_date ON records(date, position);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create record tables: %w", err)
	}
	return nil
}

func (p *SQLiteRecordProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM record_entries; DELETE FROM records;`); err != nil {
		return fmt.Errorf("reset records: %w", err)
	}
	return nil
}

func (p *SQLiteRecordProjector) Upsert(ctx context.Context, record domain.Record, position int) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const stmt = `
INSERT INTO records (id, case_number, case_title, date, language, status, entry_count, position)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  case_number=excluded.case_number,
  case_title=excluded.case_title,
  date=excluded.date,
  language=excluded.language,
  status=excluded.status,
  entry_count=excluded.entry_count,
  position=excluded.position;
`
	if _, err := tx.ExecContext(ctx, stmt,
		record.ID,
		record.CaseNumber,
		record.CaseTitle,
		record.Date,
		record.Language,
		string(record.Status),
		len(record.Entries),
		position,
	); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM record_entries WHERE record_id = ?`, record.ID); err != nil {
		return fmt.Errorf("clear record entries: %w", err)
	}
	for _, e := range record.Entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO record_entries (record_id, entry_id, speaker, text, original_text) VALUES (?, ?, ?, ?, ?)`,
			record.ID, e.ID, string(e.Speaker), e.Text, e.Source(),
		); err != nil {
			return fmt.Errorf("insert record entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

func (p *SQLiteRecordProjector) Delete(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM record_entries WHERE record_id = ?`, id); err != nil {
		return fmt.Errorf("delete record entries: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// Search returns ids of records whose case fields or entry text contain
// query, newest first.
func (p *SQLiteRecordProjector) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 50
	}
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"
	rows, err := p.db.QueryContext(ctx, `
SELECT r.id
FROM records r
WHERE lower(r.case_number) LIKE ?1 ESCAPE '\'
   OR lower(r.case_title) LIKE ?1 ESCAPE '\'
   OR EXISTS (
     SELECT 1 FROM record_entries e
     WHERE e.record_id = r.id
       AND (lower(e.text) LIKE ?1 ESCAPE '\'
         OR lower(e.original_text) LIKE ?1 ESCAPE '\'
         OR lower(e.speaker) LIKE ?1 ESCAPE '\')
   )
ORDER BY r.date DESC, r.position DESC
LIMIT ?2;
`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan record id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
