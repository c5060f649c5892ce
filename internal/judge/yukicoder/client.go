package yukicoder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/judge"
)

const apiURL = "https://yukicoder.me/api/v1"

// fetchInterval spaces out the per-problem detail calls. The API has
// no documented rate limit but hammering it gets the client banned.
const fetchInterval = time.Second

type Client struct {
	fetcher  *judge.Fetcher
	cache    judge.ResultCache
	interval time.Duration
}

var _ secondary.JudgeClient = (*Client)(nil)

func NewClient(fetcher *judge.Fetcher) *Client {
	return &Client{fetcher: fetcher, interval: fetchInterval}
}

func (c *Client) Platform() domain.Platform {
	return domain.PlatformYukicoder
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
	return nil, domain.ErrUnsupportedOperation
}

func (c *Client) GetUserSubmissions(ctx context.Context, cond secondary.SubmissionCondition) ([]domain.Submission, error) {
	return nil, domain.ErrUnsupportedOperation
}

// contestRef remembers which contest slot a problem occupies.
type contestRef struct {
	contest rawContest
	index   string
}

func (c *Client) buildSnapshot(ctx context.Context) (judge.Snapshot, error) {
	var rawProblems []rawProblem
	if err := c.fetcher.GetJSON(ctx, domain.PlatformYukicoder, "problems", fmt.Sprintf("%s/problems", apiURL), &rawProblems); err != nil {
		return judge.Snapshot{}, err
	}

	var rawContests []rawContest
	if err := c.fetcher.GetJSON(ctx, domain.PlatformYukicoder, "contests", fmt.Sprintf("%s/contest/past", apiURL), &rawContests); err != nil {
		return judge.Snapshot{}, err
	}
	for i := range rawContests {
		rawContests[i].Name = strings.TrimSpace(rawContests[i].Name)
	}

	refByProblem := make(map[int64]contestRef)
	for _, rc := range rawContests {
		for idx, problemID := range rc.ProblemIDList {
			refByProblem[problemID] = contestRef{
				contest: rc,
				index:   judge.NumToAlphabet(idx + 1),
			}
		}
	}

	problems := make([]domain.Problem, 0, len(rawProblems))
	problemsByContest := make(map[int64][]domain.Problem)
	for _, rp := range rawProblems {
		ref, ok := refByProblem[rp.ProblemID]
		if !ok {
			// Not attached to any past contest (e.g. standalone or
			// still-running sets); nothing to anchor it to.
			continue
		}

		detail, err := c.fetchProblem(ctx, rp.ProblemID)
		if err != nil {
			return judge.Snapshot{}, err
		}

		problem := buildProblem(ref, detail)
		problems = append(problems, problem)
		problemsByContest[ref.contest.ID] = append(problemsByContest[ref.contest.ID], problem)

		if err := pause(ctx, c.interval); err != nil {
			return judge.Snapshot{}, err
		}
	}

	contests := make([]domain.Contest, 0, len(rawContests))
	for _, rc := range rawContests {
		contest, err := buildContest(rc, problemsByContest[rc.ID])
		if err != nil {
			return judge.Snapshot{}, err
		}
		contests = append(contests, contest)
	}

	return judge.Snapshot{Problems: problems, Contests: contests}, nil
}

func (c *Client) fetchProblem(ctx context.Context, problemID int64) (rawProblemWithStatistics, error) {
	var detail rawProblemWithStatistics
	url := fmt.Sprintf("%s/problems/%d", apiURL, problemID)
	if err := c.fetcher.GetJSON(ctx, domain.PlatformYukicoder, "problem_detail", url, &detail); err != nil {
		return rawProblemWithStatistics{}, err
	}
	return detail, nil
}

func buildProblem(ref contestRef, detail rawProblemWithStatistics) domain.Problem {
	level := detail.Level
	var tags []string
	if detail.Tags != "" {
		tags = strings.Split(detail.Tags, ",")
	}

	return domain.ReconstructProblem(
		domain.PlatformYukicoder,
		fmt.Sprintf("%d", ref.contest.ID),
		ref.index,
		detail.Title,
		ClassifyContest(ref.contest),
		&level,
		nil,
		nil,
		tags,
		fmt.Sprintf("https://yukicoder.me/problems/no/%d", detail.No),
		&detail.Statistics.Solved,
		&detail.Statistics.Total,
	)
}

func buildContest(rc rawContest, problems []domain.Problem) (domain.Contest, error) {
	start, err := time.Parse(time.RFC3339, rc.Date)
	if err != nil {
		return domain.Contest{}, &domain.TransportError{
			Platform: domain.PlatformYukicoder,
			Op:       "contests",
			Err:      fmt.Errorf("parse contest %d start date %q: %w", rc.ID, rc.Date, err),
		}
	}
	end, err := time.Parse(time.RFC3339, rc.EndDate)
	if err != nil {
		return domain.Contest{}, &domain.TransportError{
			Platform: domain.PlatformYukicoder,
			Op:       "contests",
			Err:      fmt.Errorf("parse contest %d end date %q: %w", rc.ID, rc.EndDate, err),
		}
	}

	startSeconds := start.Unix()
	durationSeconds := end.Unix() - startSeconds

	return domain.ReconstructContest(
		domain.PlatformYukicoder,
		fmt.Sprintf("%d", rc.ID),
		rc.Name,
		ClassifyContest(rc),
		domain.PhaseFinished,
		&startSeconds,
		&durationSeconds,
		fmt.Sprintf("https://yukicoder.me/contests/%d", rc.ID),
		problems,
	), nil
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
