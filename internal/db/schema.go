package db

// SchemaSQL is the complete schema for fresh SGMI installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL() so test and production schemas cannot drift.
//
// The collections table is deliberately a key/blob pair: each top-level
// collection (equipment, work orders, inventory, ...) is one JSON document
// under one stable key, overwritten whole on every write. Schema evolution
// happens through optional-field tolerance on the JSON side, not through
// table migrations.
const SchemaSQL = `
-- Collections (one serialized blob per top-level collection key)
CREATE TABLE IF NOT EXISTS collections (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Activity log (append-only audit trail, closed set of kinds)
CREATE TABLE IF NOT EXISTS activity_log (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL CHECK(kind IN ('order_saved', 'equipment_saved', 'part_saved', 'stock_posted', 'task_reprogrammed', 'reset', 'sync')),
	entity_id TEXT,
	detail TEXT,
	user TEXT,
	ts DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_activity_log_ts ON activity_log(ts);
`

// GetSchemaSQL returns the authoritative schema for test setup.
func GetSchemaSQL() string {
	return SchemaSQL
}
