package pg

import (
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/Mosabragab/pharmasave-ai-sub000/migrations"
)

// Migrate applies the embedded schema migrations to the connected database.
func Migrate(db *sqlx.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db.DB, ".")
}
