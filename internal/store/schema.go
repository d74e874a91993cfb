package store

// schema is a trimmed EAV layout: customers carry their prefix and gender
// inline, attribute options live in their own table
const schema = `
CREATE TABLE IF NOT EXISTS customer_entity (
	entity_id  INTEGER PRIMARY KEY,
	firstname  TEXT NOT NULL DEFAULT '',
	lastname   TEXT NOT NULL DEFAULT '',
	prefix     TEXT NOT NULL DEFAULT '',
	gender     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_customer_prefix ON customer_entity(prefix);

CREATE TABLE IF NOT EXISTS eav_attribute (
	attribute_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	entity_type    TEXT NOT NULL,
	attribute_code TEXT NOT NULL,
	uses_source    INTEGER NOT NULL DEFAULT 0,
	UNIQUE(entity_type, attribute_code)
);

CREATE TABLE IF NOT EXISTS eav_attribute_option (
	option_id    INTEGER PRIMARY KEY AUTOINCREMENT,
	attribute_id INTEGER NOT NULL REFERENCES eav_attribute(attribute_id) ON DELETE CASCADE,
	label        TEXT NOT NULL,
	value        TEXT NOT NULL,
	sort_order   INTEGER NOT NULL DEFAULT 0
);
`

const selectCustomers = `SELECT entity_id, firstname, lastname, prefix, gender FROM customer_entity`
