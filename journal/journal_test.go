package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeWin(t *testing.T) {
	t.Parallel()

	assert.True(t, sampleTrade(0.01).Win())
	assert.False(t, sampleTrade(0).Win())
	assert.False(t, sampleTrade(-5).Win())
}

func TestTradeEntryTimeUndated(t *testing.T) {
	t.Parallel()

	tr := sampleTrade(1)
	tr.Time = "14:05:09"

	ts, dated, err := tr.EntryTime()
	require.NoError(t, err)
	assert.False(t, dated)
	assert.Equal(t, time.Date(1900, 1, 1, 14, 5, 9, 0, time.UTC), ts)
	assert.Equal(t, time.Monday, ts.Weekday())
}

func TestTradeEntryTimeDated(t *testing.T) {
	t.Parallel()

	tr := sampleTrade(1)
	tr.Date = "2024-03-15"

	ts, dated, err := tr.EntryTime()
	require.NoError(t, err)
	assert.True(t, dated)
	assert.Equal(t, time.Friday, ts.Weekday())
	assert.Equal(t, 9, ts.Hour())
}

func TestTradeEntryTimeMalformed(t *testing.T) {
	t.Parallel()

	tr := sampleTrade(1)
	tr.Time = "9.30am"
	_, _, err := tr.EntryTime()
	assert.Error(t, err)

	tr = sampleTrade(1)
	tr.Date = "15/03/2024"
	_, _, err = tr.EntryTime()
	assert.Error(t, err)
}

func TestTradeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Trade)
		wantErr bool
	}{
		{"valid", func(*Trade) {}, false},
		{"valid with date", func(tr *Trade) { tr.Date = "2024-01-02" }, false},
		{"unknown pair", func(tr *Trade) { tr.Pair = "USD/JPY" }, true},
		{"missing pair", func(tr *Trade) { tr.Pair = "" }, true},
		{"bad side", func(tr *Trade) { tr.Side = "long" }, true},
		{"bad time", func(tr *Trade) { tr.Time = "25:00:00" }, true},
		{"bad date", func(tr *Trade) { tr.Date = "2024-13-01" }, true},
		{"bad trend", func(tr *Trade) { tr.Trend1H = "Sideways" }, true},
		{"unknown criteria bits", func(tr *Trade) { tr.Criteria = CriteriaSet(1 << 15) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := sampleTrade(10, IFC)
			tt.mutate(&tr)
			err := tr.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTrade))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	trades := []Trade{{Seq: 1, Result: 1}, {Seq: 2, Result: 2}}

	got, err := Find(trades, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Result)

	_, err = Find(trades, 3)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Find(trades, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewValidatorRegistersPairRule(t *testing.T) {
	t.Parallel()

	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })

	for _, name := range PairNames() {
		assert.NoError(t, v.Var(name, "pair"), name)
	}
	assert.Error(t, v.Var("XAU/USD", "pair"))
}
