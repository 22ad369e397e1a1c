package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists projects in DATA_DIR/aura.db.
type SQLiteStore struct {
	db          *sql.DB
	maxProjects int
}

func OpenSQLite(dataDir string, maxProjects int) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dataDir, "aura.db"))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite pragma failed: %w", err)
		}
	}

	s := &SQLiteStore{db: db, maxProjects: maxProjects}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		theme TEXT NOT NULL,
		status TEXT NOT NULL,
		source TEXT NOT NULL,
		code TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("migrate projects: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Append(p Project) error {
	if p.ID == "" {
		return fmt.Errorf("append project: empty id")
	}
	code, err := json.Marshal(p.Code)
	if err != nil {
		return fmt.Errorf("encode project code: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRow(`SELECT COUNT(*) FROM projects WHERE id = ?`, p.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check project id: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("append project %s: %w", p.ID, ErrDuplicateProject)
	}

	_, err = tx.Exec(
		`INSERT INTO projects (id, name, type, theme, status, source, code, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Type, p.Theme, p.Status, p.Source, string(code), p.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	if s.maxProjects > 0 {
		_, err = tx.Exec(
			`DELETE FROM projects WHERE rowid NOT IN (SELECT rowid FROM projects ORDER BY rowid DESC LIMIT ?)`,
			s.maxProjects,
		)
		if err != nil {
			return fmt.Errorf("trim projects: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Get(id string) (Project, error) {
	row := s.db.QueryRow(
		`SELECT id, name, type, theme, status, source, code, created_at FROM projects WHERE id = ?`, id,
	)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrProjectNotFound
	}
	return p, err
}

func (s *SQLiteStore) List() ([]Project, error) {
	rows, err := s.db.Query(
		`SELECT id, name, type, theme, status, source, code, created_at FROM projects ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *SQLiteStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (Project, error) {
	var (
		p         Project
		code      string
		createdAt string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Theme, &p.Status, &p.Source, &code, &createdAt); err != nil {
		return Project{}, err
	}
	if err := json.Unmarshal([]byte(code), &p.Code); err != nil {
		return Project{}, fmt.Errorf("decode project %s: %w", p.ID, err)
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Project{}, fmt.Errorf("parse created_at for %s: %w", p.ID, err)
	}
	p.CreatedAt = t
	return p, nil
}
