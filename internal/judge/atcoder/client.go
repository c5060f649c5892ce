package atcoder

import (
	"context"
	"fmt"

	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/judge"
)

const (
	informationURL = "https://kenkoooo.com/atcoder/resources"
	statisticsURL  = "https://kenkoooo.com/atcoder/atcoder-api/v3"
)

// Client fetches AtCoder data through the unofficial statistics API.
type Client struct {
	fetcher *judge.Fetcher
	cache   judge.ResultCache
}

var _ secondary.JudgeClient = (*Client)(nil)

func NewClient(fetcher *judge.Fetcher) *Client {
	return &Client{fetcher: fetcher}
}

func (c *Client) Platform() domain.Platform {
	return domain.PlatformAtcoder
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

// GetRecentSubmissions retrieves up to 1,000 of the latest submissions.
func (c *Client) GetRecentSubmissions(ctx context.Context) ([]domain.Submission, error) {
	var raw []rawSubmission
	url := fmt.Sprintf("%s/recent", statisticsURL)
	if err := c.fetcher.GetJSON(ctx, domain.PlatformAtcoder, "recent_submissions", url, &raw); err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(raw))
	for _, s := range raw {
		submissions = append(submissions, buildSubmission(s))
	}
	return submissions, nil
}

func (c *Client) GetUserSubmissions(ctx context.Context, cond secondary.SubmissionCondition) ([]domain.Submission, error) {
	var raw []rawSubmission
	url := fmt.Sprintf("%s/user/submissions?user=%s&from_second=%d", statisticsURL, cond.UserID, cond.FromSecond)
	if err := c.fetcher.GetJSON(ctx, domain.PlatformAtcoder, "user_submissions", url, &raw); err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(raw))
	for _, s := range raw {
		submissions = append(submissions, buildSubmission(s))
	}
	return submissions, nil
}

func (c *Client) buildSnapshot(ctx context.Context) (judge.Snapshot, error) {
	var rawContests []rawContest
	if err := c.fetcher.GetJSON(ctx, domain.PlatformAtcoder, "contests", fmt.Sprintf("%s/contests.json", informationURL), &rawContests); err != nil {
		return judge.Snapshot{}, err
	}

	var rawProblems []rawProblem
	if err := c.fetcher.GetJSON(ctx, domain.PlatformAtcoder, "problems", fmt.Sprintf("%s/merged-problems.json", informationURL), &rawProblems); err != nil {
		return judge.Snapshot{}, err
	}

	estimations := map[string]rawEstimation{}
	if err := c.fetcher.GetJSON(ctx, domain.PlatformAtcoder, "estimations", fmt.Sprintf("%s/problem-models.json", informationURL), &estimations); err != nil {
		return judge.Snapshot{}, err
	}

	return assemble(rawContests, rawProblems, estimations)
}

// assemble groups problems under their contests, classifies each
// contest and derives displayed metrics. A problem referencing an
// unknown contest fails the whole snapshot.
func assemble(rawContests []rawContest, rawProblems []rawProblem, estimations map[string]rawEstimation) (judge.Snapshot, error) {
	categoryByContest := make(map[string]string, len(rawContests))
	for _, rc := range rawContests {
		categoryByContest[rc.ID] = ClassifyContest(rc)
	}

	problemsByContest := make(map[string][]domain.Problem)
	problems := make([]domain.Problem, 0, len(rawProblems))
	for _, rp := range rawProblems {
		category, ok := categoryByContest[rp.ContestID]
		if !ok {
			return judge.Snapshot{}, &domain.ReferentialIntegrityError{
				Platform:  domain.PlatformAtcoder,
				ProblemID: rp.ID,
				ContestID: rp.ContestID,
			}
		}

		var difficulty *float64
		var isExperimental *bool
		if est, ok := estimations[rp.ID]; ok {
			if est.Difficulty != nil {
				clipped := domain.ClipDifficulty(*est.Difficulty)
				difficulty = &clipped
			}
			isExperimental = est.IsExperimental
		}

		problem := domain.ReconstructProblem(
			domain.PlatformAtcoder,
			rp.ContestID,
			rp.ProblemIndex,
			rp.Name,
			category,
			rp.Point,
			difficulty,
			isExperimental,
			nil,
			fmt.Sprintf("https://atcoder.jp/contests/%s/tasks/%s", rp.ContestID, rp.ID),
			rp.SolverCount,
			nil,
		)
		problems = append(problems, problem)
		problemsByContest[rp.ContestID] = append(problemsByContest[rp.ContestID], problem)
	}

	contests := make([]domain.Contest, 0, len(rawContests))
	for _, rc := range rawContests {
		start := rc.StartEpochSecond
		duration := rc.DurationSecond
		contests = append(contests, domain.ReconstructContest(
			domain.PlatformAtcoder,
			rc.ID,
			rc.Title,
			categoryByContest[rc.ID],
			domain.PhaseFinished,
			&start,
			&duration,
			fmt.Sprintf("https://atcoder.jp/contests/%s", rc.ID),
			problemsByContest[rc.ID],
		))
	}

	return judge.Snapshot{Problems: problems, Contests: contests}, nil
}

func buildSubmission(s rawSubmission) domain.Submission {
	// The statistics API carries no problem name, point, or difficulty;
	// readers resolve those against stored problems.
	contestID := s.ContestID
	problemID := s.ProblemID
	return domain.ReconstructSubmission(
		domain.PlatformAtcoder,
		fmt.Sprintf("%d", s.ID),
		s.UserID,
		s.Language,
		domain.ParseVerdict(s.Result),
		s.ExecutionTime,
		nil,
		&s.Length,
		s.EpochSecond,
		domain.SubmissionProblem{
			ContestID: &contestID,
			Index:     &problemID,
		},
	)
}
