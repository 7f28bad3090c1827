package migration

import "embed"

//go:embed sql/*.sql
var FS embed.FS

const Root = "sql"
