// Package guardian is the repository root. It only carries assets that need
// to be embedded into the binary, currently the goose SQL migrations.
package guardian

import "embed"

// Migrations contains the goose SQL migrations for the report store.
//
//go:embed migrations/*.sql
var Migrations embed.FS
