package attendance

import (
	"database/sql"

	"github.com/google/uuid"
)

// PostgresStore persists attendance keys in a single flat table. The
// writes are idempotent by construction: inserts land on a unique key
// with ON CONFLICT DO NOTHING and deletes of missing rows are no-ops.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the attendance table if it does not exist yet.
func EnsureSchema(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS attendance_records (
			id UUID PRIMARY KEY,
			record_key TEXT NOT NULL UNIQUE,
			marked_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`
	_, err := db.Exec(query)
	return err
}

func (s *PostgresStore) LoadAll() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT record_key FROM attendance_records`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		records[key] = true
	}
	return records, rows.Err()
}

func (s *PostgresStore) Add(key string) error {
	query := `INSERT INTO attendance_records (id, record_key) VALUES ($1, $2)
			  ON CONFLICT (record_key) DO NOTHING`
	_, err := s.db.Exec(query, uuid.New().String(), key)
	return err
}

func (s *PostgresStore) Remove(key string) error {
	_, err := s.db.Exec(`DELETE FROM attendance_records WHERE record_key = $1`, key)
	return err
}
