package codeforces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

func TestAssembleGroupsProblemsAndStats(t *testing.T) {
	rating := 800.0
	start := int64(1_620_000_000)
	contests := []rawContest{
		{
			ID:               1546,
			Name:             "Codeforces Round #732 (Div. 2)",
			Phase:            "FINISHED",
			DurationSeconds:  7200,
			StartTimeSeconds: &start,
		},
	}
	problemset := rawProblemsetResult{
		Problems: []rawProblem{
			{ContestID: 1546, Index: "A", Name: "AquaMoon and Two Arrays", Rating: &rating, Tags: []string{"greedy", "math"}},
			{ContestID: 1546, Index: "B", Name: "AquaMoon and Stolen String", Tags: []string{"strings"}},
		},
		ProblemStatistics: []rawProblemStat{
			{ContestID: 1546, Index: "A", SolvedCount: 20000},
			{ContestID: 1546, Index: "B", SolvedCount: 15000},
		},
	}

	snap, err := assemble(contests, problemset)
	require.NoError(t, err)

	require.Len(t, snap.Contests, 1)
	contest := snap.Contests[0]
	assert.Equal(t, "codeforces_1546", contest.ID)
	assert.Equal(t, CategoryDiv2, contest.Category)
	assert.Equal(t, domain.PhaseFinished, contest.Phase)
	require.Len(t, contest.Problems, 2)

	a := contest.Problems[0]
	assert.Equal(t, "codeforces_1546_A", a.ID)
	require.NotNil(t, a.SolverCount)
	assert.Equal(t, int64(20000), *a.SolverCount)
	require.NotNil(t, a.Difficulty)
	assert.Equal(t, 800.0, *a.Difficulty)
	assert.Equal(t, []string{"greedy", "math"}, a.Tags)

	// Stats are per problem; B must not inherit A's count.
	b := contest.Problems[1]
	require.NotNil(t, b.SolverCount)
	assert.Equal(t, int64(15000), *b.SolverCount)
}

func TestAssembleOrphanProblemFailsPlatform(t *testing.T) {
	problemset := rawProblemsetResult{
		Problems: []rawProblem{{ContestID: 99999, Index: "A", Name: "Orphan"}},
	}

	_, err := assemble(nil, problemset)
	require.Error(t, err)

	var refErr *domain.ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, domain.PlatformCodeforces, refErr.Platform)
}

func TestBuildSubmissionNormalizesUnits(t *testing.T) {
	contestID := int64(1546)
	s := rawSubmission{
		ID:                  123456789,
		ContestID:           &contestID,
		CreationTimeSeconds: 1_620_000_123,
		Problem:             rawProblem{ContestID: 1546, Index: "A", Name: "AquaMoon and Two Arrays"},
		Author:              rawParty{Members: []rawMember{{Handle: "tourist"}}},
		ProgrammingLanguage: "GNU C++17",
		Verdict:             "OK",
		TimeConsumedMillis:  155,
		MemoryConsumedBytes: 2048 * 1024,
	}

	sub := buildSubmission(s)
	assert.Equal(t, "codeforces_123456789", sub.ID)
	assert.Equal(t, "tourist", sub.UserID)
	assert.Equal(t, domain.VerdictOk, sub.Verdict)
	assert.Equal(t, domain.LanguageCPP, sub.Language)
	require.NotNil(t, sub.Memory)
	assert.Equal(t, int64(2048), *sub.Memory)
	require.NotNil(t, sub.ExecutionTime)
	assert.Equal(t, int64(155), *sub.ExecutionTime)
}
