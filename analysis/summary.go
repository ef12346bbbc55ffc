package analysis

import "github.com/rustyeddy/tradebook/journal"

// Summary holds account-level statistics over the whole journal.
type Summary struct {
	Total  int `json:"total"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"` // every trade that is not a win, flat ones included
	Flat   int `json:"flat"`

	WinRate      float64 `json:"win_rate"`
	MeanResult   float64 `json:"mean_result"`
	GrossProfit  float64 `json:"gross_profit"`
	GrossLoss    float64 `json:"gross_loss"`
	ProfitFactor float64 `json:"profit_factor"` // 0 when there is no gross loss or no gross profit

	StartBalance   float64 `json:"start_balance"`
	CurrentBalance float64 `json:"current_balance"`
}

func Summarize(trades []journal.Trade, initialBalance float64) Summary {
	s := Summary{
		Total:          len(trades),
		StartBalance:   initialBalance,
		CurrentBalance: journal.CurrentBalance(trades, initialBalance),
	}
	if len(trades) == 0 {
		return s
	}

	var net float64
	for _, t := range trades {
		net += t.Result
		switch {
		case t.Result > 0:
			s.GrossProfit += t.Result
		case t.Result < 0:
			s.GrossLoss -= t.Result
		default:
			s.Flat++
		}
	}

	s.WinRate, s.Wins, _ = WinRate(trades)
	s.Losses = s.Total - s.Wins
	s.MeanResult = net / float64(s.Total)
	if s.GrossLoss > 0 {
		s.ProfitFactor = s.GrossProfit / s.GrossLoss
	}
	return s
}
