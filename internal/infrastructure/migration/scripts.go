package migration

import "embed"

// Per-dialect goose scripts live under scripts/<dialect>.
//
//go:embed scripts/mysql/*.sql scripts/sqlite/*.sql
var embeddedScripts embed.FS
