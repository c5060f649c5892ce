package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalIDs(t *testing.T) {
	assert.Equal(t, "atcoder_abc100", ContestID(PlatformAtcoder, "abc100"))
	assert.Equal(t, "atcoder_abc100_A", ProblemID(PlatformAtcoder, "abc100", "A"))
	assert.Equal(t, "codeforces_654321", SubmissionID(PlatformCodeforces, "654321"))
	assert.Equal(t, "aoj_volume_1_0001", ProblemID(PlatformAoj, "volume_1", "0001"))
}

func TestCanonicalIDs_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, ContestID(PlatformYukicoder, "274"), ContestID(PlatformYukicoder, "274"))
		assert.Equal(t, ProblemID(PlatformCodeforces, "1549", "B"), ProblemID(PlatformCodeforces, "1549", "B"))
	}
}

func TestReconstructProblem_DerivedFields(t *testing.T) {
	point := 100.0
	solved := int64(50)
	total := int64(200)

	p := ReconstructProblem(
		PlatformAtcoder, "abc100", "A", "X", "ABC",
		&point, nil, nil, nil,
		"https://atcoder.jp/contests/abc100/tasks/abc100_a",
		&solved, &total,
	)

	assert.Equal(t, "atcoder_abc100_A", p.ID)
	assert.Equal(t, "atcoder_abc100", p.ContestID)
	assert.Equal(t, "A. X", p.Title)
	assert.NotNil(t, p.SuccessRate)
	assert.Equal(t, 25.0, *p.SuccessRate)
	// nil tag sets normalize to an empty slice, never null.
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
}

func TestReconstructContest_SynthesizesID(t *testing.T) {
	c := ReconstructContest(
		PlatformCodeforces, "1549", "Codeforces Round #726", "Div. 2",
		PhaseFinished, nil, nil, "https://codeforces.com/contest/1549", nil,
	)

	assert.Equal(t, "codeforces_1549", c.ID)
	assert.Equal(t, "1549", c.RawID)
	assert.NotNil(t, c.Problems)
	assert.Empty(t, c.Problems)
}
