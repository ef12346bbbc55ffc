package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradebook/pkg/id"
)

// FormatTradeOrg renders a Trade as an Org-mode block for pasting into a
// review file. Structured facts go into the PROPERTIES drawer so they stay
// searchable; notes become the body.
func FormatTradeOrg(t Trade) string {
	heading := fmt.Sprintf("** Trade #%d: %s %s (%s)", t.Seq, t.Pair, t.Side, outcome(t))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":SEQ: %d\n", t.Seq))
	if t.ID != "" {
		b.WriteString(fmt.Sprintf(":ID: %s\n", t.ID))
		if ts, err := id.Time(t.ID); err == nil {
			b.WriteString(fmt.Sprintf(":RECORDED: %s\n", ts.Format(time.RFC3339)))
		}
	}
	b.WriteString(fmt.Sprintf(":PAIR: %s\n", t.Pair))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", t.Side))
	if t.Date != "" {
		b.WriteString(fmt.Sprintf(":DATE: %s\n", t.Date))
	}
	b.WriteString(fmt.Sprintf(":TIME: %s\n", t.Time))
	b.WriteString(fmt.Sprintf(":TREND_1D: %s\n", t.Trend1D))
	b.WriteString(fmt.Sprintf(":TREND_1H: %s\n", t.Trend1H))
	b.WriteString(fmt.Sprintf(":TREND_15M: %s\n", t.Trend15m))
	b.WriteString(fmt.Sprintf(":CRITERIA: %s\n", t.Criteria))
	b.WriteString(fmt.Sprintf(":RESULT: %.2f\n", t.Result))
	b.WriteString(fmt.Sprintf(":BALANCE: %.2f\n", t.Balance))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Notes\n")
	if notes := strings.TrimSpace(t.Notes); notes != "" {
		for _, line := range strings.Split(notes, "\n") {
			b.WriteString("- " + strings.TrimSpace(line) + "\n")
		}
	} else {
		b.WriteString("- \n")
	}

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func outcome(t Trade) string {
	switch {
	case t.Result > 0:
		return "win"
	case t.Result < 0:
		return "loss"
	default:
		return "flat"
	}
}
