package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/jpp0ca/storybook-media/internal/domain"
	"github.com/jpp0ca/storybook-media/internal/ports"
)

var _ ports.MultimediaStore = (*SQL)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS multimedia (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	kind        TEXT NOT NULL,
	source_url  TEXT NOT NULL,
	platform    TEXT NOT NULL,
	embed_url   TEXT NOT NULL,
	is_embedded BOOLEAN NOT NULL,
	file_size   TEXT NOT NULL DEFAULT '',
	created_at  BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS multimedia_kind_created ON multimedia (kind, created_at);
`

const columns = `id, title, description, kind, source_url, platform, embed_url, is_embedded, file_size, created_at`

// SQL stores the catalog in sqlite or postgres through database/sql.
type SQL struct {
	conn   *sql.DB
	driver string
}

// OpenSQL connects to the database and creates the schema if needed.
func OpenSQL(driver, dsn string) (*SQL, error) {
	if driver == "sqlite" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, dbErr("create data directory", err)
		}
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, dbErr("open", err)
	}
	if driver == "sqlite" {
		// sqlite allows a single writer.
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, dbErr("ping", err)
	}

	s := &SQL{conn: conn, driver: driver}
	if err := s.migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQL) migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.conn.ExecContext(ctx, stmt); err != nil {
			return dbErr("migrate", err)
		}
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *SQL) Close() error {
	return s.conn.Close()
}

// rebind rewrites '?' placeholders into the driver's syntax.
func (s *SQL) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQL) Create(ctx context.Context, m domain.Multimedia) error {
	query := s.rebind(`INSERT INTO multimedia (` + columns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := s.conn.ExecContext(ctx, query,
		m.ID.String(), m.Title, m.Description, string(m.Kind), m.SourceURL,
		string(m.Platform), m.EmbedURL, m.IsEmbedded, m.FileSize, m.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return dbErr("insert multimedia", err)
	}
	return nil
}

func (s *SQL) Get(ctx context.Context, id uuid.UUID) (*domain.Multimedia, error) {
	row := s.conn.QueryRowContext(ctx, s.rebind(`SELECT `+columns+` FROM multimedia WHERE id = ?`), id.String())
	m, err := scanMultimedia(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, dbErr("get multimedia", err)
	}
	return m, nil
}

func (s *SQL) List(ctx context.Context, kind domain.MediaKind) ([]domain.Multimedia, error) {
	query := `SELECT ` + columns + ` FROM multimedia`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.conn.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, dbErr("list multimedia", err)
	}
	defer rows.Close()

	out := []domain.Multimedia{}
	for rows.Next() {
		m, err := scanMultimedia(rows)
		if err != nil {
			return nil, dbErr("scan multimedia", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("list multimedia", err)
	}
	return out, nil
}

func (s *SQL) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.conn.ExecContext(ctx, s.rebind(`DELETE FROM multimedia WHERE id = ?`), id.String())
	if err != nil {
		return dbErr("delete multimedia", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbErr("delete multimedia", err)
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMultimedia(row scanner) (*domain.Multimedia, error) {
	var (
		m         domain.Multimedia
		id        string
		kind      string
		platform  string
		createdAt int64
	)
	err := row.Scan(&id, &m.Title, &m.Description, &kind, &m.SourceURL,
		&platform, &m.EmbedURL, &m.IsEmbedded, &m.FileSize, &createdAt)
	if err != nil {
		return nil, err
	}
	m.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", id, err)
	}
	m.Kind = domain.MediaKind(kind)
	m.Platform = domain.Platform(platform)
	m.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &m, nil
}
