package analysis

import (
	"testing"
	"time"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dated(result float64, date string) journal.Trade {
	t := trade(result)
	t.Date = date
	return t
}

func TestByWeekdayDated(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		dated(10, "2024-03-11"), // Monday
		dated(-5, "2024-03-11"),
		dated(3, "2024-03-13"), // Wednesday
		dated(0, "2024-03-17"), // Sunday
	}

	days, warnings := ByWeekday(trades)
	assert.Empty(t, warnings)
	require.Len(t, days, 3)

	assert.Equal(t, time.Monday, days[0].Day)
	assert.Equal(t, "Monday", days[0].Name)
	assert.Equal(t, 2, days[0].Trades)
	assert.Equal(t, 50.0, days[0].WinRate)

	assert.Equal(t, time.Wednesday, days[1].Day)
	assert.Equal(t, 100.0, days[1].WinRate)

	assert.Equal(t, time.Sunday, days[2].Day)
	assert.Equal(t, 0.0, days[2].WinRate)
}

func TestByWeekdayUndatedUsesPlaceholder(t *testing.T) {
	t.Parallel()

	days, warnings := ByWeekday([]journal.Trade{trade(1), trade(-1), trade(2)})
	require.Len(t, days, 1)
	assert.Equal(t, journal.PlaceholderDate.Weekday(), days[0].Day)
	assert.Equal(t, 3, days[0].Trades)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "3 trade(s) have no calendar date")
}

func TestByWeekdaySkipsMalformedTime(t *testing.T) {
	t.Parallel()

	bad := dated(5, "2024-03-12")
	bad.Seq = 2
	bad.Time = "noon"

	trades := []journal.Trade{dated(5, "2024-03-12"), bad, dated(-5, "2024-03-12")}
	days, warnings := ByWeekday(trades)

	require.Len(t, days, 1)
	assert.Equal(t, 2, days[0].Trades)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "trade 2")

	total := 0
	for _, d := range days {
		total += d.Trades
	}
	assert.Equal(t, len(trades)-1, total)
}

func TestByWeekdayEmpty(t *testing.T) {
	t.Parallel()

	days, warnings := ByWeekday(nil)
	assert.Empty(t, days)
	assert.NotNil(t, days)
	assert.Empty(t, warnings)
}
