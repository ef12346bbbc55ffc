package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradebook/pkg/id"
)

// SQLiteStore keeps the journal in a SQLite database. Unlike the CSV
// layout it also records a ULID and the optional calendar date per trade.
type SQLiteStore struct {
	db      *sql.DB
	initial float64

	// broken is set when the file exists but is not a usable journal.
	broken error
}

// NewSQLite opens or creates the journal database. An existing file that
// is not a SQLite database still opens; it loads as empty with an error
// wrapping ErrMalformedStore and refuses appends.
func NewSQLite(path string, initialBalance float64) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	j := &SQLiteStore{db: db, initial: initialBalance}
	if _, err := db.Exec(Schema); err != nil {
		if !isCorrupt(err) && !exists(path) {
			db.Close()
			return nil, err
		}
		j.broken = fmt.Errorf("%w: %s: %w", ErrMalformedStore, path, err)
	}
	return j, nil
}

func isCorrupt(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrNotADB || se.Code == sqlite3.ErrCorrupt
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// malformed wraps errors caused by a damaged database file.
func malformed(err error) error {
	if isCorrupt(err) {
		return fmt.Errorf("%w: %w", ErrMalformedStore, err)
	}
	return err
}

const selectTrades = `
	SELECT trade_id, pair, side, trade_time, trade_date, trend_1d, trend_1h, trend_15m,
		criteria, result, balance, notes
	FROM trades`

func (j *SQLiteStore) LoadAll() ([]Trade, error) {
	if j.broken != nil {
		return []Trade{}, j.broken
	}

	rows, err := j.db.Query(selectTrades + ` ORDER BY seq ASC`)
	if err != nil {
		return []Trade{}, malformed(err)
	}
	defer rows.Close()

	out := []Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return []Trade{}, malformed(err)
		}
		t.Seq = len(out) + 1
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return []Trade{}, malformed(err)
	}
	return out, nil
}

func (j *SQLiteStore) Append(t Trade) (Trade, error) {
	if err := t.Validate(); err != nil {
		return Trade{}, err
	}
	if j.broken != nil {
		return Trade{}, fmt.Errorf("append: %w", j.broken)
	}

	tx, err := j.db.Begin()
	if err != nil {
		return Trade{}, fmt.Errorf("append: %w", malformed(err))
	}
	defer tx.Rollback()

	var count, bad int
	prev := j.initial
	err = tx.QueryRow(`SELECT COUNT(*), COUNT(CASE WHEN criteria < 0 OR criteria > ? THEN 1 END) FROM trades`,
		int64(allCriteriaMask)).Scan(&count, &bad)
	if err != nil {
		return Trade{}, fmt.Errorf("append: %w", malformed(err))
	}
	if bad > 0 {
		return Trade{}, fmt.Errorf("append: %w: %d row(s) with unknown criteria bits", ErrMalformedStore, bad)
	}
	if count > 0 {
		err = tx.QueryRow(`SELECT balance FROM trades ORDER BY seq DESC LIMIT 1`).Scan(&prev)
		if err != nil {
			return Trade{}, fmt.Errorf("append: %w", err)
		}
	}

	t.Seq = count + 1
	t.Balance = prev + t.Result
	t.ID = id.New()

	_, err = tx.Exec(`
		INSERT INTO trades
		(trade_id, pair, side, trade_time, trade_date, trend_1d, trend_1h, trend_15m,
		 criteria, result, balance, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Pair, string(t.Side), t.Time, t.Date,
		string(t.Trend1D), string(t.Trend1H), string(t.Trend15m),
		int64(t.Criteria), t.Result, t.Balance, t.Notes, time.Now().UTC(),
	)
	if err != nil {
		return Trade{}, fmt.Errorf("append: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Trade{}, fmt.Errorf("append: %w", err)
	}
	return t, nil
}

// GetTrade returns a single trade by its ULID.
func (j *SQLiteStore) GetTrade(tradeID string) (Trade, error) {
	if j.broken != nil {
		return Trade{}, j.broken
	}

	row := j.db.QueryRow(selectTrades+` WHERE trade_id = ?`, tradeID)
	t, err := scanTrade(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Trade{}, fmt.Errorf("%w: %q", ErrNotFound, tradeID)
	}
	if err != nil {
		return Trade{}, err
	}

	// Seq is positional.
	err = j.db.QueryRow(`SELECT COUNT(*) FROM trades WHERE seq <= (SELECT seq FROM trades WHERE trade_id = ?)`,
		tradeID).Scan(&t.Seq)
	if err != nil {
		return Trade{}, err
	}
	return t, nil
}

func (j *SQLiteStore) Close() error {
	return j.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (Trade, error) {
	var (
		t        Trade
		side     string
		trends   [3]string
		criteria int64
	)
	err := s.Scan(
		&t.ID,
		&t.Pair,
		&side,
		&t.Time,
		&t.Date,
		&trends[0],
		&trends[1],
		&trends[2],
		&criteria,
		&t.Result,
		&t.Balance,
		&t.Notes,
	)
	if err != nil {
		return Trade{}, err
	}

	t.Side = Side(side)
	t.Trend1D, t.Trend1H, t.Trend15m = Trend(trends[0]), Trend(trends[1]), Trend(trends[2])
	if criteria < 0 || criteria > int64(allCriteriaMask) {
		return Trade{}, fmt.Errorf("%w: trade %s: criteria bits %#x", ErrMalformedStore, t.ID, criteria)
	}
	t.Criteria = CriteriaSet(criteria)
	return t, nil
}
