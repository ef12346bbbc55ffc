// Package analysis finds which combinations of entry criteria have
// historically won or lost. Everything here is a pure function over a
// snapshot of the journal; nothing is cached between passes.
package analysis

import (
	"fmt"

	"github.com/rustyeddy/tradebook/journal"
)

// ComboSize is how many "other" criteria each subset draws.
const ComboSize = 4

// Subset is one candidate combination of criteria: the basic criteria
// followed by ComboSize of the others.
type Subset struct {
	Index    int                 `json:"index"`
	Name     string              `json:"name"`
	Criteria []journal.Criterion `json:"criteria"`
	Mask     journal.CriteriaSet `json:"-"`
}

// GroupName is the display name of the k-th subset (1-based).
func GroupName(k int) string {
	return fmt.Sprintf("Group %d", k)
}

// Enumerate builds basic ∪ c for every ComboSize-combination c of other,
// in lexicographic combination order over other. Fewer than ComboSize
// others yields no subsets.
func Enumerate(basic, other []journal.Criterion) []Subset {
	combos := combinations(len(other), ComboSize)
	out := make([]Subset, 0, len(combos))
	for i, idx := range combos {
		crit := make([]journal.Criterion, 0, len(basic)+ComboSize)
		crit = append(crit, basic...)
		for _, j := range idx {
			crit = append(crit, other[j])
		}
		out = append(out, Subset{
			Index:    i + 1,
			Name:     GroupName(i + 1),
			Criteria: crit,
			Mask:     journal.NewCriteriaSet(crit...),
		})
	}
	return out
}

// combinations returns every k-element index tuple over [0, n) in
// lexicographic order.
func combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var out [][]int
	for {
		out = append(out, append([]int(nil), idx...))

		// rightmost position that can still advance
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Binomial is C(n, k).
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}
	return r
}
