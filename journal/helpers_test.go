package journal

func sampleTrade(result float64, cs ...Criterion) Trade {
	return Trade{
		Pair:     "EUR/USD",
		Side:     Buy,
		Time:     "09:30:00",
		Trend1D:  Bullish,
		Trend1H:  Bullish,
		Trend15m: Bearish,
		Criteria: NewCriteriaSet(cs...),
		Result:   result,
		Notes:    "note",
	}
}
