// Package repositories defines the repository interfaces for composer
// persistence. These abstract the data layer so the editing core stays
// decoupled from the database.
package repositories

import (
	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
)

// DraftRepository stores exactly one draft snapshot per author. Every save
// overwrites the previous snapshot; there is no versioning or conflict
// resolution.
type DraftRepository interface {
	Save(authorID string, snapshot *editor.Snapshot) error
	Load(authorID string) (*editor.Snapshot, bool, error)
	Delete(authorID string) error
}
