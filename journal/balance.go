package journal

import (
	"fmt"
	"math"
)

// DefaultInitialBalance is the account equity before the first trade.
const DefaultInitialBalance = 10000.0

const balanceTolerance = 1e-6

// CurrentBalance is the balance after the last trade, or initial when the
// history is empty.
func CurrentBalance(history []Trade, initial float64) float64 {
	if len(history) == 0 {
		return initial
	}
	return history[len(history)-1].Balance
}

// Chain stamps t as the next trade after history: its sequence number and
// its running balance.
func Chain(history []Trade, t Trade, initial float64) Trade {
	t.Seq = len(history) + 1
	t.Balance = CurrentBalance(history, initial) + t.Result
	return t
}

// BalanceError reports a trade whose stored balance breaks the running sum.
type BalanceError struct {
	Seq  int
	Want float64
	Got  float64
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("trade %d: balance %.2f, expected %.2f", e.Seq, e.Got, e.Want)
}

// VerifyBalances checks balance(i) == balance(i-1) + result(i) with
// balance(-1) == initial. It returns the first break found.
func VerifyBalances(trades []Trade, initial float64) error {
	prev := initial
	for _, t := range trades {
		want := prev + t.Result
		if math.Abs(t.Balance-want) > balanceTolerance {
			return &BalanceError{Seq: t.Seq, Want: want, Got: t.Balance}
		}
		prev = t.Balance
	}
	return nil
}
