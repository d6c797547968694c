package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEveryKindDescribedOnce(t *testing.T) {
	for _, k := range Kinds() {
		d := Describe(k)
		require.Equal(t, k, d.Kind)
		require.NotEmpty(t, d.Word)
		if k != KindIncorrect {
			require.NotEmpty(t, d.Usage, d.Word)
			got, ok := Lookup(d.Word)
			require.True(t, ok, d.Word)
			require.Equal(t, k, got)
		}
	}
}

func TestDescribePanicsOnUnknownKind(t *testing.T) {
	require.Panics(t, func() { Describe(kindCount) })
	require.Panics(t, func() { Describe(Kind(-1)) })
}

func TestLookupIgnoresCaseAndHidesPlaceholder(t *testing.T) {
	k, ok := Lookup("DELETE")
	require.True(t, ok)
	require.Equal(t, KindDelete, k)

	_, ok = Lookup("incorrect")
	require.False(t, ok)
}

func TestSecondaryFlagsHaveSecondaryTargets(t *testing.T) {
	for _, d := range All() {
		if !d.SecondaryMutating {
			continue
		}
		require.True(t, d.Mutating, d.Word)
		_, secondary := d.Category.Targets()
		require.NotEmpty(t, secondary, d.Word)
	}
}

func TestMutatingCommandsHavePrimaryTargets(t *testing.T) {
	for _, d := range All() {
		if !d.Mutating {
			continue
		}
		primary, _ := d.Category.Targets()
		require.NotEmpty(t, primary, d.Word)
	}
}

func TestCategoryTargets(t *testing.T) {
	primary, secondary := CategoryPerson.Targets()
	require.Equal(t, []Target{TargetPersons}, primary)
	require.Equal(t, []Target{TargetExams, TargetAssessments}, secondary)

	primary, secondary = CategoryGeneral.Targets()
	require.Empty(t, primary)
	require.Empty(t, secondary)
}
