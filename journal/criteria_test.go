package journal

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriterionNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 11, NumCriteria)
	assert.Equal(t, "HTF zone Mitigation", HTFZoneMitigation.String())
	assert.Equal(t, "50% mitigation", HalfMitigation.String())
	assert.Equal(t, "Combined liquidation", CombinedLiquidation.String())
	assert.Equal(t, "Criterion(42)", Criterion(42).String())
}

func TestParseCriterion(t *testing.T) {
	t.Parallel()

	for _, c := range AllCriteria() {
		got, err := ParseCriterion(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCriterion("  choch/flip ")
	require.NoError(t, err)
	assert.Equal(t, ChochFlip, got)

	_, err = ParseCriterion("Fair value gap")
	assert.Error(t, err)
}

func TestParseCriteriaRejectsRepeats(t *testing.T) {
	t.Parallel()

	_, err := ParseCriteria([]string{"IFC", "Liquidation", "ifc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listed twice")
}

func TestDefaultCriteriaPartitionVocabulary(t *testing.T) {
	t.Parallel()

	basic := NewCriteriaSet(DefaultBasicCriteria...)
	other := NewCriteriaSet(DefaultOtherCriteria...)

	assert.Equal(t, 5, basic.Len())
	assert.Equal(t, 6, other.Len())
	assert.Zero(t, basic&other)
	assert.Equal(t, AllSet(), basic|other)
}

func TestCriteriaSet(t *testing.T) {
	t.Parallel()

	s := NewCriteriaSet(IFC, VShapeReaction)
	assert.True(t, s.Has(IFC))
	assert.False(t, s.Has(Liquidation))
	assert.True(t, s.Contains(NewCriteriaSet(IFC)))
	assert.False(t, s.Contains(NewCriteriaSet(IFC, Liquidation)))
	assert.True(t, s.Contains(0))
	assert.Equal(t, []Criterion{IFC, VShapeReaction}, s.List())
	assert.Equal(t, "IFC, V-shape reaction", s.String())
	assert.True(t, s.Valid())
	assert.False(t, CriteriaSet(1<<12).Valid())
	assert.Equal(t, s, s.With(Criterion(200)))
}

func TestCriteriaSetJSON(t *testing.T) {
	t.Parallel()

	s := NewCriteriaSet(ChochFlip, HalfMitigation)
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["ChoCh/Flip","50% mitigation"]`, string(b))

	var back CriteriaSet
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)

	assert.Error(t, json.Unmarshal([]byte(`["nope"]`), &back))
}
