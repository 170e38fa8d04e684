// Package drafts implements the single-slot draft repository on the draft
// database.
package drafts

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/persistence/database"
)

// Repository persists one draft snapshot per author. Saves overwrite the
// previous row; the payload is the plain serialized snapshot with no schema
// version attached.
type Repository struct {
	db *database.Database
}

// NewRepository creates a draft repository on the given database.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

// Save writes the snapshot, replacing any prior draft for the author.
func (r *Repository) Save(authorID string, snapshot *editor.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}

	query := `INSERT INTO drafts (author_id, payload, updated_at) VALUES (?, ?, ?)
	          ON CONFLICT(author_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	if _, err := r.db.Conn.Exec(query, authorID, string(payload), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Load returns the author's draft snapshot if one exists.
func (r *Repository) Load(authorID string) (*editor.Snapshot, bool, error) {
	query := `SELECT payload FROM drafts WHERE author_id = ?`

	var payload string
	err := r.db.Conn.QueryRow(query, authorID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load draft: %w", err)
	}

	var snapshot editor.Snapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return nil, false, fmt.Errorf("failed to parse draft payload: %w", err)
	}
	return &snapshot, true, nil
}

// Delete removes the author's draft, if any.
func (r *Repository) Delete(authorID string) error {
	if _, err := r.db.Conn.Exec(`DELETE FROM drafts WHERE author_id = ?`, authorID); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
