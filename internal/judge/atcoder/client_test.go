package atcoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

func TestAssembleEndToEnd(t *testing.T) {
	point := 100.0
	solved := int64(50)
	contests := []rawContest{
		{
			ID:               "abc100",
			Title:            "AtCoder Beginner Contest 100",
			StartEpochSecond: 1_600_000_000,
			DurationSecond:   6000,
			RateChange:       "~1999",
		},
	}
	problems := []rawProblem{
		{
			ID:           "abc100_a",
			ContestID:    "abc100",
			ProblemIndex: "A",
			Name:         "X",
			Point:        &point,
			SolverCount:  &solved,
		},
	}
	difficulty := 1200.0
	experimental := false
	estimations := map[string]rawEstimation{
		"abc100_a": {Difficulty: &difficulty, IsExperimental: &experimental},
	}

	snap, err := assemble(contests, problems, estimations)
	require.NoError(t, err)

	require.Len(t, snap.Contests, 1)
	contest := snap.Contests[0]
	assert.Equal(t, "atcoder_abc100", contest.ID)
	assert.Equal(t, CategoryABC, contest.Category)
	assert.Equal(t, domain.PhaseFinished, contest.Phase)
	require.Len(t, contest.Problems, 1)

	problem := contest.Problems[0]
	assert.Equal(t, "atcoder_abc100_A", problem.ID)
	assert.Equal(t, "atcoder_abc100", problem.ContestID)
	assert.Equal(t, "A. X", problem.Title)
	assert.Equal(t, CategoryABC, problem.Category)
	require.NotNil(t, problem.Difficulty)
	assert.Equal(t, 1200.0, *problem.Difficulty)

	// The statistics API exposes no submission counter, so the rate
	// stays absent even with a solver count.
	assert.Nil(t, problem.SuccessRate)
	require.NotNil(t, problem.SolverCount)
	assert.Equal(t, int64(50), *problem.SolverCount)
}

func TestAssembleClipsSubKneeDifficulty(t *testing.T) {
	contests := []rawContest{contestWithID("abc200")}
	problems := []rawProblem{
		{ID: "abc200_a", ContestID: "abc200", ProblemIndex: "A", Name: "Low"},
	}
	difficulty := -500.0
	estimations := map[string]rawEstimation{
		"abc200_a": {Difficulty: &difficulty},
	}

	snap, err := assemble(contests, problems, estimations)
	require.NoError(t, err)
	require.Len(t, snap.Problems, 1)
	require.NotNil(t, snap.Problems[0].Difficulty)
	assert.Less(t, *snap.Problems[0].Difficulty, 400.0)
	assert.Greater(t, *snap.Problems[0].Difficulty, 0.0)
}

func TestAssembleOrphanProblemFailsPlatform(t *testing.T) {
	contests := []rawContest{contestWithID("abc100")}
	problems := []rawProblem{
		{ID: "abc999_a", ContestID: "abc999", ProblemIndex: "A", Name: "Orphan"},
	}

	_, err := assemble(contests, problems, nil)
	require.Error(t, err)

	var refErr *domain.ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, domain.PlatformAtcoder, refErr.Platform)
	assert.Equal(t, "abc999", refErr.ContestID)
}

func TestAssembleContestWithoutProblems(t *testing.T) {
	contests := []rawContest{contestWithID("abc300")}

	snap, err := assemble(contests, nil, nil)
	require.NoError(t, err)
	require.Len(t, snap.Contests, 1)
	assert.NotNil(t, snap.Contests[0].Problems)
	assert.Empty(t, snap.Contests[0].Problems)
}
