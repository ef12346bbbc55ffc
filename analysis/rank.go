package analysis

const (
	DefaultHighThreshold = 60.0
	DefaultLowThreshold  = 20.0
)

// GlobalBest returns the performance with the highest win rate. Ties go to
// the earliest in enumeration order. ok is false for an empty list.
func GlobalBest(perfs []Performance) (best Performance, ok bool) {
	for i, p := range perfs {
		if i == 0 || p.WinRate > best.WinRate {
			best = p
		}
	}
	return best, len(perfs) > 0
}

// HighBucket keeps performances with win rate >= threshold, in order.
func HighBucket(perfs []Performance, threshold float64) []Performance {
	return filter(perfs, func(p Performance) bool { return p.WinRate >= threshold })
}

// LowBucket keeps performances with win rate <= threshold, in order.
func LowBucket(perfs []Performance, threshold float64) []Performance {
	return filter(perfs, func(p Performance) bool { return p.WinRate <= threshold })
}

func filter(perfs []Performance, keep func(Performance) bool) []Performance {
	out := []Performance{}
	for _, p := range perfs {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
