// Package migrations holds the embedded goose migrations for the local
// prayer database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
