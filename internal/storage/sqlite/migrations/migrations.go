// Package migrations embeds the goose SQL migrations of the SQLite storage.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
