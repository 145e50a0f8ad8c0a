// Package migrations embeds the SQL schema migrations for the marine CMS.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
