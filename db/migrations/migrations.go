package migrations

import "embed"

// FS embeds the SQL migrations creating the campaign_performance table.
// golang-migrate reads them through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects.
const Version = 1
