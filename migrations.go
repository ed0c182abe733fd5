// Package yourfuture embeds the SQL migrations applied by the migrate and
// serve commands.
package yourfuture

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
