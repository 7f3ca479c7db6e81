package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations returns the embedded migrations directory as an fs.FS rooted
// at migrations/.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// The pattern above guarantees the directory exists.
		panic(err)
	}
	return sub
}
