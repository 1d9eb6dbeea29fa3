// Package migrations embeds the SQL migrations owned by the sales tips service.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
