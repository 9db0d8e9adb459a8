// Package migrations embeds the goose migration scripts that shape the
// ledger database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
