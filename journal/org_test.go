package journal

import (
	"strings"
	"testing"

	"github.com/rustyeddy/tradebook/pkg/id"
	"github.com/stretchr/testify/assert"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	trade := sampleTrade(250, IFC, HalfMitigation)
	trade.Seq = 7
	trade.Date = "2024-03-15"
	trade.Balance = 10250
	trade.Notes = "waited for the sweep\nentry on retest"

	result := FormatTradeOrg(trade)

	assert.Contains(t, result, "** Trade #7: EUR/USD buy (win)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":SEQ: 7")
	assert.Contains(t, result, ":PAIR: EUR/USD")
	assert.Contains(t, result, ":SIDE: buy")
	assert.Contains(t, result, ":DATE: 2024-03-15")
	assert.Contains(t, result, ":TIME: 09:30:00")
	assert.Contains(t, result, ":TREND_15M: Bearish")
	assert.Contains(t, result, ":CRITERIA: IFC, 50% mitigation")
	assert.Contains(t, result, ":RESULT: 250.00")
	assert.Contains(t, result, ":BALANCE: 10250.00")
	assert.Contains(t, result, ":END:")
	assert.Contains(t, result, "*** Notes\n- waited for the sweep\n- entry on retest\n")
	assert.NotContains(t, result, ":ID:")
}

func TestFormatTradeOrgWithID(t *testing.T) {
	t.Parallel()

	trade := sampleTrade(-5)
	trade.ID = id.New()

	result := FormatTradeOrg(trade)
	assert.Contains(t, result, "(loss)")
	assert.Contains(t, result, ":ID: "+trade.ID)
	assert.Contains(t, result, ":RECORDED: ")
}

func TestFormatTradeOrgFlat(t *testing.T) {
	t.Parallel()

	trade := sampleTrade(0)
	trade.Notes = ""
	result := FormatTradeOrg(trade)
	assert.Contains(t, result, "(flat)")
	assert.Contains(t, result, "*** Notes\n- \n")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	a := sampleTrade(1)
	a.Seq = 1
	b := sampleTrade(-1)
	b.Seq = 2

	result := FormatTradesOrg([]Trade{a, b})
	assert.Equal(t, 2, strings.Count(result, ":PROPERTIES:"))
	assert.Contains(t, result, "\n\n\n** Trade #2")
	assert.Empty(t, FormatTradesOrg(nil))
}
