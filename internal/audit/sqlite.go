package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"github.com/byiringiro-albert/portfolio/internal/models"
	"github.com/byiringiro-albert/portfolio/migrations"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

// SQLite appends audit records to a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens the database at dsn and runs pending migrations.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Record inserts rec.
func (s *SQLite) Record(ctx context.Context, rec models.AuditRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO download_requests
		   (request_id, publication_id, name, email, institution, purpose, ip, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RequestID, rec.PublicationID, rec.Name, rec.Email, rec.Institution,
		rec.Purpose, rec.IP, rec.Timestamp.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *SQLite) Recent(ctx context.Context, limit int) ([]models.AuditRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT request_id, publication_id, name, email, institution, purpose, ip, created_at
		 FROM download_requests ORDER BY created_at DESC, request_id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.AuditRecord
	for rows.Next() {
		var rec models.AuditRecord
		var created string
		if err := rows.Scan(&rec.RequestID, &rec.PublicationID, &rec.Name, &rec.Email,
			&rec.Institution, &rec.Purpose, &rec.IP, &created); err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		rec.Timestamp, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parse audit timestamp: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit records: %w", err)
	}
	return out, nil
}
