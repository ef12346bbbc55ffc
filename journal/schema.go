// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	trade_id TEXT NOT NULL UNIQUE,
	pair TEXT NOT NULL,
	side TEXT NOT NULL,
	trade_time TEXT NOT NULL,
	trade_date TEXT NOT NULL DEFAULT '',
	trend_1d TEXT NOT NULL,
	trend_1h TEXT NOT NULL,
	trend_15m TEXT NOT NULL,
	criteria INTEGER NOT NULL,
	result REAL NOT NULL,
	balance REAL NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(trade_date);
`
