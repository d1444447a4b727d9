package migrations

import "embed"

// FS holds the SQL migration files in this directory. They are applied
// through the golang-migrate iofs driver on startup.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
