package repository

var schema = []string{
	`CREATE TABLE IF NOT EXISTS deals (
		id                TEXT PRIMARY KEY,
		mill_id           TEXT NOT NULL,
		invoice_no        TEXT NOT NULL,
		deal_type         TEXT NOT NULL,
		commodity         TEXT NOT NULL,
		party_name        TEXT NOT NULL,
		party_mobile      TEXT NOT NULL DEFAULT '',
		vehicle_no        TEXT NOT NULL DEFAULT '',
		bags              INTEGER NOT NULL DEFAULT 0,
		weight_kg         DOUBLE PRECISION NOT NULL,
		price_per_quintal DOUBLE PRECISION NOT NULL,
		gst_rate          DOUBLE PRECISION NOT NULL DEFAULT 0,
		tax_type          TEXT NOT NULL DEFAULT 'exclusive',
		base_amount       DOUBLE PRECISION NOT NULL,
		gst_amount        DOUBLE PRECISION NOT NULL,
		total_amount      DOUBLE PRECISION NOT NULL,
		deal_date         TIMESTAMPTZ NOT NULL,
		note              TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS deals_mill_invoice_idx ON deals (mill_id, invoice_no)`,
	`CREATE INDEX IF NOT EXISTS deals_mill_date_idx ON deals (mill_id, deal_date)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id         TEXT PRIMARY KEY,
		mill_id    TEXT NOT NULL,
		party_name TEXT NOT NULL,
		direction  TEXT NOT NULL,
		amount     DOUBLE PRECISION NOT NULL,
		mode       TEXT NOT NULL,
		reference  TEXT NOT NULL DEFAULT '',
		note       TEXT NOT NULL DEFAULT '',
		txn_date   TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS transactions_mill_date_idx ON transactions (mill_id, txn_date)`,
}
