// journal/pairs.go
package journal

import "sort"

type PairMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string
}

// Pairs lists the instruments a trade may be journaled against.
var Pairs = map[string]PairMeta{
	"EUR/USD": {
		Name:          "EUR/USD",
		BaseCurrency:  "EUR",
		QuoteCurrency: "USD",
	},
	"GBP/USD": {
		Name:          "GBP/USD",
		BaseCurrency:  "GBP",
		QuoteCurrency: "USD",
	},
}

// PairNames returns the known pair names sorted.
func PairNames() []string {
	out := make([]string, 0, len(Pairs))
	for name := range Pairs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
