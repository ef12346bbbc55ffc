package journal

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/goccy/go-json"
)

// Criterion is one entry condition a trader ticks off when journaling a
// trade. The vocabulary is closed; names match the journal column headers.
type Criterion uint8

const (
	HTFZoneMitigation Criterion = iota
	Liquidation
	IFC
	ChochFlip
	ProTrendOrderflow
	HalfMitigation
	VShapeReaction
	LiquidityToTarget
	NotFromOppositeZone
	CorrectivePullback
	CombinedLiquidation

	NumCriteria = int(CombinedLiquidation) + 1
)

var criterionNames = [NumCriteria]string{
	HTFZoneMitigation:   "HTF zone Mitigation",
	Liquidation:         "Liquidation",
	IFC:                 "IFC",
	ChochFlip:           "ChoCh/Flip",
	ProTrendOrderflow:   "PRO TREND/Orderflow",
	HalfMitigation:      "50% mitigation",
	VShapeReaction:      "V-shape reaction",
	LiquidityToTarget:   "Liquidity to target",
	NotFromOppositeZone: "Not from opposite zone",
	CorrectivePullback:  "Corrective pullback",
	CombinedLiquidation: "Combined liquidation",
}

// Criteria that every evaluated combination requires by default.
var DefaultBasicCriteria = []Criterion{
	HTFZoneMitigation,
	ChochFlip,
	IFC,
	ProTrendOrderflow,
	Liquidation,
}

// Criteria that combinations are drawn from by default.
var DefaultOtherCriteria = []Criterion{
	HalfMitigation,
	VShapeReaction,
	LiquidityToTarget,
	NotFromOppositeZone,
	CorrectivePullback,
	CombinedLiquidation,
}

func (c Criterion) String() string {
	if int(c) >= NumCriteria {
		return fmt.Sprintf("Criterion(%d)", uint8(c))
	}
	return criterionNames[c]
}

func (c Criterion) Valid() bool {
	return int(c) < NumCriteria
}

func (c Criterion) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown criterion %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Criterion) UnmarshalText(b []byte) error {
	v, err := ParseCriterion(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// AllCriteria returns the full vocabulary in journal column order.
func AllCriteria() []Criterion {
	out := make([]Criterion, NumCriteria)
	for i := range out {
		out[i] = Criterion(i)
	}
	return out
}

// ParseCriterion maps a column name to its criterion. Matching ignores case
// and surrounding whitespace.
func ParseCriterion(name string) (Criterion, error) {
	n := strings.TrimSpace(name)
	for i, cn := range criterionNames {
		if strings.EqualFold(cn, n) {
			return Criterion(i), nil
		}
	}
	return 0, fmt.Errorf("unknown criterion %q", name)
}

// ParseCriteria parses a list of names, rejecting unknown names and repeats.
func ParseCriteria(names []string) ([]Criterion, error) {
	out := make([]Criterion, 0, len(names))
	var seen CriteriaSet
	for _, n := range names {
		c, err := ParseCriterion(n)
		if err != nil {
			return nil, err
		}
		if seen.Has(c) {
			return nil, fmt.Errorf("criterion %q listed twice", c)
		}
		seen = seen.With(c)
		out = append(out, c)
	}
	return out, nil
}

// CriteriaSet is a bitset over the criterion vocabulary.
type CriteriaSet uint16

const allCriteriaMask = CriteriaSet(1<<NumCriteria - 1)

func NewCriteriaSet(cs ...Criterion) CriteriaSet {
	var s CriteriaSet
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

// AllSet has every criterion flagged.
func AllSet() CriteriaSet {
	return allCriteriaMask
}

func (s CriteriaSet) Has(c Criterion) bool {
	return c.Valid() && s&(1<<c) != 0
}

func (s CriteriaSet) With(c Criterion) CriteriaSet {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

// Contains reports whether every criterion in o is also in s.
func (s CriteriaSet) Contains(o CriteriaSet) bool {
	return s&o == o
}

func (s CriteriaSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Valid reports whether s only holds known criteria.
func (s CriteriaSet) Valid() bool {
	return s&^allCriteriaMask == 0
}

// List returns the flagged criteria in column order.
func (s CriteriaSet) List() []Criterion {
	out := make([]Criterion, 0, s.Len())
	for i := 0; i < NumCriteria; i++ {
		if s.Has(Criterion(i)) {
			out = append(out, Criterion(i))
		}
	}
	return out
}

func (s CriteriaSet) String() string {
	return JoinCriteria(s.List())
}

// MarshalJSON encodes the set as a list of criterion names.
func (s CriteriaSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

func (s *CriteriaSet) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	cs, err := ParseCriteria(names)
	if err != nil {
		return err
	}
	*s = NewCriteriaSet(cs...)
	return nil
}

// JoinCriteria renders criteria names separated by ", ".
func JoinCriteria(cs []Criterion) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
