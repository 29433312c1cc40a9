package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

// DocumentStore keeps dashboard documents in the kv_documents table.
type DocumentStore struct {
	db *sql.DB
}

func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_documents WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ports.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *DocumentStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_documents (key, value)
	VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`

	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

func (s *DocumentStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_documents WHERE key = ANY($1)`, pq.Array(keys))
	return err
}
