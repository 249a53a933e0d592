// Package migrations embeds the versioned schema for golang-migrate.
package migrations

import "embed"

// Postgres holds the up/down scripts applied by database.RunMigrations.
//
//go:embed postgres/*.sql
var Postgres embed.FS
