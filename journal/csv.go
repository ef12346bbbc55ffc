// journal/csv.go
package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Column headers of the journal file, in order.
const (
	ColPair     = "Pair"
	ColSide     = "Side"
	ColTime     = "Trade Time"
	ColTrend1D  = "1D Trend"
	ColTrend1H  = "1H Trend"
	ColTrend15m = "15m Trend"
	ColResult   = "Result"
	ColBalance  = "Balance"
	ColNotes    = "Notes"
)

// Columns returns the journal header: trade fields, one column per
// criterion, then result, balance and notes.
func Columns() []string {
	cols := []string{ColPair, ColSide, ColTime, ColTrend1D, ColTrend1H, ColTrend15m}
	for _, c := range AllCriteria() {
		cols = append(cols, c.String())
	}
	return append(cols, ColResult, ColBalance, ColNotes)
}

// CSVStore keeps the journal in a single CSV file. Every append rewrites
// the whole file.
type CSVStore struct {
	path    string
	initial float64
}

func NewCSV(path string, initialBalance float64) (*CSVStore, error) {
	if path == "" {
		return nil, errors.New("csv journal: empty path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("csv journal: %w", err)
		}
	}
	return &CSVStore{path: path, initial: initialBalance}, nil
}

func (j *CSVStore) Path() string {
	return j.path
}

func (j *CSVStore) LoadAll() ([]Trade, error) {
	f, err := os.Open(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Trade{}, nil
	}
	if err != nil {
		// Unreadable reads like unparseable: empty history, writes refused.
		return []Trade{}, fmt.Errorf("%w: %s: %w", ErrMalformedStore, j.path, err)
	}
	defer f.Close()

	trades, err := ReadCSV(f)
	if err != nil {
		return []Trade{}, fmt.Errorf("%w: %s: %v", ErrMalformedStore, j.path, err)
	}
	return trades, nil
}

func (j *CSVStore) Append(t Trade) (Trade, error) {
	if err := t.Validate(); err != nil {
		return Trade{}, err
	}

	history, err := j.LoadAll()
	if err != nil {
		return Trade{}, fmt.Errorf("append: %w", err)
	}

	// The file layout has no date column.
	t.Date = ""
	t.ID = ""
	t = Chain(history, t, j.initial)

	if err := j.rewrite(append(history, t)); err != nil {
		return Trade{}, fmt.Errorf("append: %w", err)
	}
	return t, nil
}

func (j *CSVStore) Close() error {
	return nil
}

// rewrite replaces the journal file with trades via a synced temp file.
func (j *CSVStore) rewrite(trades []Trade) error {
	tmp, err := os.CreateTemp(filepath.Dir(j.path), filepath.Base(j.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, trades); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), j.path)
}

// WriteCSV writes the header and one row per trade.
func WriteCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns()); err != nil {
		return err
	}
	for _, t := range trades {
		if err := cw.Write(formatRow(t)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatRow(t Trade) []string {
	row := []string{
		t.Pair,
		string(t.Side),
		t.Time,
		string(t.Trend1D),
		string(t.Trend1H),
		string(t.Trend15m),
	}
	for _, c := range AllCriteria() {
		row = append(row, strconv.FormatBool(t.Criteria.Has(c)))
	}
	return append(row, f(t.Result), f(t.Balance), t.Notes)
}

// ReadCSV parses a journal file. Columns are located by header name so
// files whose columns were reordered still load. Boolean cells accept any
// strconv.ParseBool spelling, which covers files written by pandas.
func ReadCSV(r io.Reader) ([]Trade, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []Trade{}, nil
	}

	idx, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	trades := make([]Trade, 0, len(records)-1)
	for i, rec := range records[1:] {
		t, err := parseRow(idx, rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		t.Seq = i + 1
		trades = append(trades, t)
	}
	return trades, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		idx[h] = i
	}
	var missing []string
	for _, col := range Columns() {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRow(idx map[string]int, rec []string) (Trade, error) {
	cell := func(col string) string {
		return strings.TrimSpace(rec[idx[col]])
	}

	t := Trade{
		Pair:     cell(ColPair),
		Side:     Side(cell(ColSide)),
		Time:     cell(ColTime),
		Trend1D:  Trend(cell(ColTrend1D)),
		Trend1H:  Trend(cell(ColTrend1H)),
		Trend15m: Trend(cell(ColTrend15m)),
		Notes:    rec[idx[ColNotes]],
	}

	for _, c := range AllCriteria() {
		v, err := cast.ToBoolE(cell(c.String()))
		if err != nil {
			return Trade{}, fmt.Errorf("%s: %w", c, err)
		}
		if v {
			t.Criteria = t.Criteria.With(c)
		}
	}

	var err error
	if t.Result, err = cast.ToFloat64E(cell(ColResult)); err != nil {
		return Trade{}, fmt.Errorf("%s: %w", ColResult, err)
	}
	if t.Balance, err = cast.ToFloat64E(cell(ColBalance)); err != nil {
		return Trade{}, fmt.Errorf("%s: %w", ColBalance, err)
	}
	return t, nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
