package aoj

import (
	"context"
	"fmt"

	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/judge"
)

const apiURL = "https://judgeapi.u-aizu.ac.jp"

const userSubmissionPageSize = 100

// CategoryVolume groups the numbered problem volumes; challenge
// contests take their large classification id (ICPC, JOI, PCK, ...)
// as category.
const CategoryVolume = "Volume"

// Client builds the AOJ dataset. AOJ has no timed contest listing, so
// each volume and each challenge round becomes one pseudo-contest.
type Client struct {
	fetcher *judge.Fetcher
	cache   judge.ResultCache
}

var _ secondary.JudgeClient = (*Client)(nil)

func NewClient(fetcher *judge.Fetcher) *Client {
	return &Client{fetcher: fetcher}
}

func (c *Client) Platform() domain.Platform {
	return domain.PlatformAoj
}

func (c *Client) GetProblems(ctx context.Context) ([]domain.Problem, error) {
	snap, err := c.cache.Get(ctx, c.buildSnapshot)
	if err != nil {
		return nil, err
	}
	return snap.Problems, nil
}

func (c *Client) GetContests(ctx context.Context) ([]domain.Contest, error) {
	snap, err := c.cache.Get(ctx, c.buildSnapshot)
	if err != nil {
		return nil, err
	}
	return snap.Contests, nil
}

func (c *Client) GetRecentSubmissions(ctx context.Context) ([]domain.Submission, error) {
	var raw []rawSubmission
	url := fmt.Sprintf("%s/submission_records/recent", apiURL)
	if err := c.fetcher.GetJSON(ctx, domain.PlatformAoj, "recent_submissions", url, &raw); err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(raw))
	for _, s := range raw {
		submissions = append(submissions, buildSubmission(s))
	}
	return submissions, nil
}

func (c *Client) GetUserSubmissions(ctx context.Context, cond secondary.SubmissionCondition) ([]domain.Submission, error) {
	page := cond.Page
	if page < 1 {
		page = 1
	}

	var raw []rawSubmission
	url := fmt.Sprintf("%s/submission_records/users/%s?page=%d&size=%d", apiURL, cond.UserID, page, userSubmissionPageSize)
	if err := c.fetcher.GetJSON(ctx, domain.PlatformAoj, "user_submissions", url, &raw); err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(raw))
	for _, s := range raw {
		submissions = append(submissions, buildSubmission(s))
	}
	return submissions, nil
}

func (c *Client) buildSnapshot(ctx context.Context) (judge.Snapshot, error) {
	var problems []domain.Problem
	var contests []domain.Contest

	var filters rawFilters
	if err := c.fetcher.GetJSON(ctx, domain.PlatformAoj, "filters", fmt.Sprintf("%s/problems/filters", apiURL), &filters); err != nil {
		return judge.Snapshot{}, err
	}

	for _, volumeID := range filters.Volumes {
		var volume rawVolume
		url := fmt.Sprintf("%s/problems/volumes/%d", apiURL, volumeID)
		if err := c.fetcher.GetJSON(ctx, domain.PlatformAoj, "volume", url, &volume); err != nil {
			return judge.Snapshot{}, err
		}

		volumeProblems := buildVolumeProblems(volumeID, volume.Problems)
		problems = append(problems, volumeProblems...)
		contests = append(contests, buildVolumeContest(volumeID, volumeProblems))
	}

	var challenges rawChallenges
	if err := c.fetcher.GetJSON(ctx, domain.PlatformAoj, "challenges", fmt.Sprintf("%s/challenges", apiURL), &challenges); err != nil {
		return judge.Snapshot{}, err
	}

	for _, largeCl := range challenges.LargeCls {
		for _, middleCl := range largeCl.MiddleCls {
			var listing rawChallengeListing
			url := fmt.Sprintf("%s/challenges/cl/%s/%s", apiURL, largeCl.ID, middleCl.ID)
			if err := c.fetcher.GetJSON(ctx, domain.PlatformAoj, "challenge_listing", url, &listing); err != nil {
				return judge.Snapshot{}, err
			}

			for _, contest := range listing.Contests {
				for _, day := range contest.Days {
					dayProblems := buildChallengeProblems(largeCl.ID, middleCl.ID, contest.Year, day.Problems)
					problems = append(problems, dayProblems...)
					contests = append(contests, buildChallengeContest(largeCl.ID, middleCl.ID, contest.Year, day.Title, dayProblems))
				}
			}
		}
	}

	return judge.Snapshot{Problems: problems, Contests: contests}, nil
}

func buildVolumeProblems(volumeID int, raw []rawProblem) []domain.Problem {
	rawContestID := fmt.Sprintf("volume_%d", volumeID)
	problems := make([]domain.Problem, 0, len(raw))
	for _, rp := range raw {
		solved := rp.SolvedUser
		submissions := rp.Submissions
		problems = append(problems, domain.ReconstructProblem(
			domain.PlatformAoj,
			rawContestID,
			rp.ID,
			rp.Name,
			CategoryVolume,
			nil,
			nil,
			nil,
			nil,
			fmt.Sprintf("https://onlinejudge.u-aizu.ac.jp/challenges/search/volumes/%s", rp.ID),
			&solved,
			&submissions,
		))
	}
	return problems
}

func buildVolumeContest(volumeID int, problems []domain.Problem) domain.Contest {
	return domain.ReconstructContest(
		domain.PlatformAoj,
		fmt.Sprintf("volume_%d", volumeID),
		fmt.Sprintf("Volume %d", volumeID),
		CategoryVolume,
		domain.PhaseFinished,
		nil,
		nil,
		fmt.Sprintf("https://onlinejudge.u-aizu.ac.jp/challenges/search/volumes?volumeNo=%d", volumeID),
		problems,
	)
}

func buildChallengeProblems(largeCl, middleCl string, year int, raw []rawProblem) []domain.Problem {
	rawContestID := fmt.Sprintf("%s_%s_%d", largeCl, middleCl, year)
	problems := make([]domain.Problem, 0, len(raw))
	for _, rp := range raw {
		solved := rp.SolvedUser
		submissions := rp.Submissions
		problems = append(problems, domain.ReconstructProblem(
			domain.PlatformAoj,
			rawContestID,
			rp.ID,
			rp.Name,
			largeCl,
			nil,
			nil,
			nil,
			nil,
			fmt.Sprintf("https://onlinejudge.u-aizu.ac.jp/challenges/sources/%s/%s/%s?year=%d", largeCl, middleCl, rp.ID, year),
			&solved,
			&submissions,
		))
	}
	return problems
}

func buildChallengeContest(largeCl, middleCl string, year int, title string, problems []domain.Problem) domain.Contest {
	return domain.ReconstructContest(
		domain.PlatformAoj,
		fmt.Sprintf("%s_%s_%d", largeCl, middleCl, year),
		title,
		largeCl,
		domain.PhaseFinished,
		nil,
		nil,
		fmt.Sprintf("https://onlinejudge.u-aizu.ac.jp/challenges/sources/%s/%s?year=%d", largeCl, middleCl, year),
		problems,
	)
}

// mapStatusToVerdict follows the numeric status table documented at
// developers.u-aizu.ac.jp.
func mapStatusToVerdict(status int) domain.Verdict {
	switch status {
	case 0:
		return domain.VerdictCompileError
	case 1:
		return domain.VerdictWrongAnswer
	case 2:
		return domain.VerdictTimeLimitExceeded
	case 3:
		return domain.VerdictMemoryLimitExceeded
	case 4:
		return domain.VerdictAccepted
	case 5:
		return domain.VerdictWaiting
	case 6:
		return domain.VerdictOutputLimit
	case 7:
		return domain.VerdictRuntimeError
	case 8:
		return domain.VerdictPresentationError
	case 9:
		return domain.VerdictRuntimeError
	default:
		return domain.VerdictUnknown
	}
}

func buildSubmission(s rawSubmission) domain.Submission {
	// cpuTime ticks are 10ms; submissionDate is epoch millis.
	executionTime := s.CPUTime * 10
	memory := s.Memory
	codeSize := s.CodeSize
	problemID := s.ProblemID

	return domain.ReconstructSubmission(
		domain.PlatformAoj,
		fmt.Sprintf("%d", s.JudgeID),
		s.UserID,
		s.Language,
		mapStatusToVerdict(s.Status),
		&executionTime,
		&memory,
		&codeSize,
		s.SubmissionDate/1000,
		domain.SubmissionProblem{
			Index: &problemID,
			Name:  s.ProblemTitle,
		},
	)
}
