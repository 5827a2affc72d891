// Package migrations embeds the goose migrations applied by `careerline migrate`.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
