package aoj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

func TestBuildVolumeProblemsAndContest(t *testing.T) {
	raw := []rawProblem{
		{ID: "0001", Name: "List of Top 3 Hills", SolvedUser: 9000, Submissions: 30000},
		{ID: "0002", Name: "Digit Number", SolvedUser: 12000, Submissions: 24000},
	}

	problems := buildVolumeProblems(1, raw)
	require.Len(t, problems, 2)

	first := problems[0]
	assert.Equal(t, "aoj_volume_1_0001", first.ID)
	assert.Equal(t, "aoj_volume_1", first.ContestID)
	assert.Equal(t, CategoryVolume, first.Category)
	require.NotNil(t, first.SuccessRate)
	assert.Equal(t, 30.0, *first.SuccessRate)

	contest := buildVolumeContest(1, problems)
	assert.Equal(t, "aoj_volume_1", contest.ID)
	assert.Equal(t, "Volume 1", contest.Name)
	assert.Equal(t, domain.PhaseFinished, contest.Phase)
	assert.Nil(t, contest.StartTimeSeconds)
	require.Len(t, contest.Problems, 2)
}

func TestBuildChallengeProblemsAndContest(t *testing.T) {
	raw := []rawProblem{
		{ID: "1234", Name: "Dark Tower", SolvedUser: 40, Submissions: 160},
	}

	problems := buildChallengeProblems("ICPC", "Regional", 2019, raw)
	require.Len(t, problems, 1)
	assert.Equal(t, "aoj_ICPC_Regional_2019_1234", problems[0].ID)
	assert.Equal(t, "ICPC", problems[0].Category)

	contest := buildChallengeContest("ICPC", "Regional", 2019, "Asia 2019", problems)
	assert.Equal(t, "aoj_ICPC_Regional_2019", contest.ID)
	assert.Equal(t, "Asia 2019", contest.Name)
	assert.Equal(t, "ICPC", contest.Category)

	// Problem and contest must agree on the synthesized parent id.
	assert.Equal(t, contest.ID, problems[0].ContestID)
}

func TestMapStatusToVerdict(t *testing.T) {
	cases := map[int]domain.Verdict{
		0:  domain.VerdictCompileError,
		1:  domain.VerdictWrongAnswer,
		2:  domain.VerdictTimeLimitExceeded,
		3:  domain.VerdictMemoryLimitExceeded,
		4:  domain.VerdictAccepted,
		5:  domain.VerdictWaiting,
		6:  domain.VerdictOutputLimit,
		7:  domain.VerdictRuntimeError,
		8:  domain.VerdictPresentationError,
		9:  domain.VerdictRuntimeError,
		42: domain.VerdictUnknown,
	}
	for status, want := range cases {
		assert.Equal(t, want, mapStatusToVerdict(status), "status=%d", status)
	}
}

func TestBuildSubmissionNormalizesUnits(t *testing.T) {
	title := "List of Top 3 Hills"
	s := rawSubmission{
		JudgeID:        777,
		UserID:         "ko_no_dio",
		ProblemID:      "0001",
		SubmissionDate: 1_600_000_000_000,
		Language:       "C++17",
		Status:         4,
		CPUTime:        12,
		Memory:         3024,
		CodeSize:       512,
		ProblemTitle:   &title,
	}

	sub := buildSubmission(s)
	assert.Equal(t, "aoj_777", sub.ID)
	assert.Equal(t, domain.VerdictAccepted, sub.Verdict)
	assert.Equal(t, domain.LanguageCPP, sub.Language)
	assert.Equal(t, int64(1_600_000_000), sub.SubmissionDate)
	require.NotNil(t, sub.ExecutionTime)
	assert.Equal(t, int64(120), *sub.ExecutionTime)
	require.NotNil(t, sub.Problem.Name)
	assert.Equal(t, title, *sub.Problem.Name)
}
