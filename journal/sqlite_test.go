package journal

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path, DefaultInitialBalance)
	require.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name = 'trades'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "trades", name)
}

func TestSQLiteLoadEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	trades, err := j.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, trades)
	assert.NotNil(t, trades)
}

func TestSQLiteAppendAndLoad(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	first := sampleTrade(50, AllSet().List()...)
	first.Date = "2024-03-15"
	a, err := j.Append(first)
	require.NoError(t, err)

	b, err := j.Append(sampleTrade(-20, IFC))
	require.NoError(t, err)

	assert.Equal(t, 1, a.Seq)
	assert.Equal(t, 10050.0, a.Balance)
	assert.Equal(t, 2, b.Seq)
	assert.Equal(t, 10030.0, b.Balance)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	trades, err := j.LoadAll()
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, a, trades[0])
	assert.Equal(t, b, trades[1])
	assert.Equal(t, "2024-03-15", trades[0].Date)
	assert.Equal(t, AllSet(), trades[0].Criteria)
}

func TestSQLiteAppendRejectsInvalidTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	tr := sampleTrade(1)
	tr.Pair = "BTC/USD"
	_, err := j.Append(tr)
	assert.ErrorIs(t, err, ErrInvalidTrade)

	trades, err := j.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestSQLiteGetTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.Append(sampleTrade(1))
	require.NoError(t, err)
	want, err := j.Append(sampleTrade(2, LiquidityToTarget))
	require.NoError(t, err)

	got, err := j.GetTrade(want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLiteGetTradeNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetTrade("nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteMalformedCriteria(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.Append(sampleTrade(1))
	require.NoError(t, err)
	_, err = j.db.Exec(`UPDATE trades SET criteria = ?`, 1<<14)
	require.NoError(t, err)

	trades, err := j.LoadAll()
	assert.ErrorIs(t, err, ErrMalformedStore)
	assert.Empty(t, trades)

	_, err = j.Append(sampleTrade(2))
	assert.ErrorIs(t, err, ErrMalformedStore)

	var n int
	require.NoError(t, j.db.QueryRow(`SELECT COUNT(*) FROM trades`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSQLiteCorruptFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("this is not a database\n")},
		{"binary", []byte{0x00, 0xff, 0x13, 0x37, 0xde, 0xad, 0xbe, 0xef}},
		{"csv journal", []byte("Trade #,Pair\n1,EUR/USD\n")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "trades.db")
			require.NoError(t, os.WriteFile(path, tt.data, 0644))

			j, err := NewSQLite(path, DefaultInitialBalance)
			require.NoError(t, err)
			defer j.Close()

			trades, err := j.LoadAll()
			assert.ErrorIs(t, err, ErrMalformedStore)
			assert.NotNil(t, trades)
			assert.Empty(t, trades)

			_, err = j.Append(sampleTrade(1))
			assert.ErrorIs(t, err, ErrMalformedStore)

			_, err = j.GetTrade("01HQ0000000000000000000000")
			assert.ErrorIs(t, err, ErrMalformedStore)

			// The file is left untouched.
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, data)
		})
	}
}

func TestSQLiteAppendValidatesBeforeCorruption(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.db")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	j, err := NewSQLite(path, DefaultInitialBalance)
	require.NoError(t, err)
	defer j.Close()

	bad := sampleTrade(1)
	bad.Side = "hold"
	_, err = j.Append(bad)
	assert.ErrorIs(t, err, ErrInvalidTrade)
}
