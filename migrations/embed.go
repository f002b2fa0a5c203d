// Package migrations embeds the goose SQL migrations of the record store.
package migrations

import "embed"

// FS holds every *.sql migration, applied in version order.
//
//go:embed *.sql
var FS embed.FS
