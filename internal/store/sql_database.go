package store

import (
	"github.com/ivmikh/notes-keeper/migrations"
)

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
