// internal/adapters/db/embed.go
package db

import "embed"

// MigrationsFS carries the schema migrations compiled into the binary so
// deployments never depend on a migrations directory being present.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
