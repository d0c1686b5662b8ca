package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careerpath-labs/career-compass/internal/match"
)

func TestScore_EmptyInputs(t *testing.T) {
	t.Parallel()
	assert.Zero(t, match.Score(nil, []string{"Go"}))
	assert.Zero(t, match.Score([]string{"Go"}, nil))
	assert.Zero(t, match.Score(nil, nil))
	assert.Zero(t, match.Score([]string{}, []string{"Go"}))
}

func TestScore_SubstringContainment(t *testing.T) {
	t.Parallel()
	// A profile skill matches when any target entry contains it.
	got := match.Score([]string{"Python"}, []string{"I know Python well"})
	assert.InDelta(t, 100.0, got, 1e-9)
}

func TestScore_CaseInsensitive(t *testing.T) {
	t.Parallel()
	got := match.Score([]string{"PYTHON"}, []string{"python"})
	assert.InDelta(t, 100.0, got, 1e-9)
}

func TestScore_MaxDenominator(t *testing.T) {
	t.Parallel()
	// Two source skills against one target: one match over denominator 2.
	got := match.Score([]string{"a", "b"}, []string{"a"})
	assert.InDelta(t, 50.0, got, 1e-9)

	// One source skill against two targets: denominator is the larger side.
	got = match.Score([]string{"a"}, []string{"a", "b"})
	assert.InDelta(t, 50.0, got, 1e-9)
}

func TestScore_EachSourceCountsOnce(t *testing.T) {
	t.Parallel()
	// A source entry contained in several targets still counts once.
	got := match.Score([]string{"go"}, []string{"golang", "go programming"})
	assert.InDelta(t, 50.0, got, 1e-9)
}

func TestScore_Bounds(t *testing.T) {
	t.Parallel()
	cases := [][2][]string{
		{{"a", "b", "c"}, {"a"}},
		{{"x"}, {"y"}},
		{{"Go", "SQL"}, {"Go", "SQL", "Linux"}},
	}
	for _, c := range cases {
		got := match.Score(c[0], c[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestScore_Deterministic(t *testing.T) {
	t.Parallel()
	src := []string{"Python", "SQL", "Statistics"}
	dst := []string{"Python", "Machine Learning", "SQL"}
	first := match.Score(src, dst)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, match.Score(src, dst))
	}
}
