package yukicoder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/judge"
)

func TestClassifyContest(t *testing.T) {
	assert.Equal(t, CategoryNormal, ClassifyContest(rawContest{Name: "yukicoder contest 100"}))
	assert.Equal(t, CategoryOther, ClassifyContest(rawContest{Name: "April Fool Contest 2022"}))
}

func TestBuildProblemDerivesFields(t *testing.T) {
	ref := contestRef{
		contest: rawContest{ID: 100, Name: "yukicoder contest 100"},
		index:   judge.NumToAlphabet(2),
	}
	detail := rawProblemWithStatistics{
		No:        1234,
		ProblemID: 5678,
		Title:     "Sum of Digits",
		Level:     2.5,
		Tags:      "math,dp",
		Statistics: rawStatistics{
			Total:  200,
			Solved: 50,
		},
	}

	problem := buildProblem(ref, detail)
	assert.Equal(t, "yukicoder_100_B", problem.ID)
	assert.Equal(t, "yukicoder_100", problem.ContestID)
	assert.Equal(t, "B. Sum of Digits", problem.Title)
	assert.Equal(t, CategoryNormal, problem.Category)
	assert.Equal(t, []string{"math", "dp"}, problem.Tags)
	assert.Equal(t, "https://yukicoder.me/problems/no/1234", problem.URL)
	require.NotNil(t, problem.RawPoint)
	assert.Equal(t, 2.5, *problem.RawPoint)
	require.NotNil(t, problem.SuccessRate)
	assert.Equal(t, 25.0, *problem.SuccessRate)
}

func TestBuildContestParsesTimes(t *testing.T) {
	rc := rawContest{
		ID:      431,
		Name:    "yukicoder contest 431",
		Date:    "2024-05-10T21:20:00+09:00",
		EndDate: "2024-05-10T23:20:00+09:00",
	}

	contest, err := buildContest(rc, nil)
	require.NoError(t, err)
	assert.Equal(t, "yukicoder_431", contest.ID)
	assert.Equal(t, domain.PhaseFinished, contest.Phase)
	require.NotNil(t, contest.DurationSeconds)
	assert.Equal(t, int64(7200), *contest.DurationSeconds)
	assert.NotNil(t, contest.Problems)
	assert.Empty(t, contest.Problems)
}

func TestBuildContestMalformedDate(t *testing.T) {
	rc := rawContest{ID: 1, Name: "broken", Date: "yesterday", EndDate: "today"}
	_, err := buildContest(rc, nil)
	require.Error(t, err)

	var transportErr *domain.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestSubmissionsUnsupported(t *testing.T) {
	c := NewClient(nil)
	_, err := c.GetRecentSubmissions(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
}
