// journal/journal.go
package journal

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMalformedStore means the backing store exists but could not be
	// parsed. Readers treat it as an empty history; writers refuse to touch it.
	ErrMalformedStore = errors.New("malformed trade journal")

	// ErrInvalidTrade wraps validation failures on a trade about to be stored.
	ErrInvalidTrade = errors.New("invalid trade")

	// ErrNotFound is returned when a trade lookup has no match.
	ErrNotFound = errors.New("trade not found")
)

type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

type Trend string

const (
	Bullish Trend = "Bullish"
	Bearish Trend = "Bearish"
)

// TimeLayout is how the entry time of day is written to the journal.
const TimeLayout = "15:04:05"

// DateLayout is used for the optional calendar date of a trade.
const DateLayout = "2006-01-02"

// PlaceholderDate is the date a bare time of day lands on when no calendar
// date was recorded. Weekdays derived from it are not meaningful.
var PlaceholderDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Trade is one journaled transaction. Trades are immutable once appended.
type Trade struct {
	// Seq is the 1-based position of the trade in the journal.
	Seq int    `json:"seq"`
	ID  string `json:"id,omitempty"`

	Pair string `json:"pair" validate:"required,pair"`
	Side Side   `json:"side" validate:"required,oneof=buy sell"`

	// Time is kept as written so a bad value can be reported during
	// analysis instead of rejecting the whole journal.
	Time string `json:"time" validate:"required,datetime=15:04:05"`
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	Trend1D  Trend `json:"trend_1d" validate:"required,oneof=Bullish Bearish"`
	Trend1H  Trend `json:"trend_1h" validate:"required,oneof=Bullish Bearish"`
	Trend15m Trend `json:"trend_15m" validate:"required,oneof=Bullish Bearish"`

	Criteria CriteriaSet `json:"criteria"`

	Result  float64 `json:"result"`
	Balance float64 `json:"balance"`
	Notes   string  `json:"notes,omitempty"`
}

// Win reports whether the trade closed with a strictly positive result.
func (t Trade) Win() bool {
	return t.Result > 0
}

// EntryTime returns the entry timestamp. Without a calendar date the time
// of day is placed on PlaceholderDate and dated is false.
func (t Trade) EntryTime() (ts time.Time, dated bool, err error) {
	clock, err := time.Parse(TimeLayout, t.Time)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("trade %d: time %q: %w", t.Seq, t.Time, err)
	}

	day := PlaceholderDate
	if t.Date != "" {
		day, err = time.Parse(DateLayout, t.Date)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("trade %d: date %q: %w", t.Seq, t.Date, err)
		}
		dated = true
	}

	ts = time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
	return ts, dated, nil
}

// Store holds the append-only trade history.
type Store interface {
	// LoadAll returns every trade in append order. A missing store is an
	// empty history. A malformed store yields an empty history and an
	// error wrapping ErrMalformedStore.
	LoadAll() ([]Trade, error)

	// Append validates t, computes its balance from the stored history
	// and persists it. The stored trade is returned.
	Append(t Trade) (Trade, error)

	Close() error
}

// Find returns the trade with the given sequence number.
func Find(trades []Trade, seq int) (Trade, error) {
	if seq < 1 || seq > len(trades) {
		return Trade{}, fmt.Errorf("%w: #%d", ErrNotFound, seq)
	}
	return trades[seq-1], nil
}
