package codeforces

import (
	"context"
	"fmt"

	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/judge"
)

const apiURL = "https://codeforces.com/api"

const userSubmissionCount = 100

// Client fetches Codeforces data through the official API.
type Client struct {
	fetcher *judge.Fetcher
	cache   judge.ResultCache
}

var _ secondary.JudgeClient = (*Client)(nil)

func NewClient(fetcher *judge.Fetcher) *Client {
	return &Client{fetcher: fetcher}
}

func (c *Client) Platform() domain.Platform {
	return domain.PlatformCodeforces
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
	var resp apiResponse[[]rawSubmission]
	url := fmt.Sprintf("%s/problemset.recentStatus?count=100", apiURL)
	if err := c.fetcher.GetJSON(ctx, domain.PlatformCodeforces, "recent_submissions", url, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.Comment, "recent_submissions"); err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(resp.Result))
	for _, s := range resp.Result {
		submissions = append(submissions, buildSubmission(s))
	}
	return submissions, nil
}

// GetUserSubmissions pages through user.status; cond.Page selects the
// 1-based window of userSubmissionCount entries.
func (c *Client) GetUserSubmissions(ctx context.Context, cond secondary.SubmissionCondition) ([]domain.Submission, error) {
	page := cond.Page
	if page < 1 {
		page = 1
	}
	from := (page-1)*userSubmissionCount + 1

	var resp apiResponse[[]rawSubmission]
	url := fmt.Sprintf("%s/user.status?handle=%s&from=%d&count=%d", apiURL, cond.UserID, from, userSubmissionCount)
	if err := c.fetcher.GetJSON(ctx, domain.PlatformCodeforces, "user_submissions", url, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.Comment, "user_submissions"); err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(resp.Result))
	for _, s := range resp.Result {
		submissions = append(submissions, buildSubmission(s))
	}
	return submissions, nil
}

func (c *Client) buildSnapshot(ctx context.Context) (judge.Snapshot, error) {
	var problemsResp apiResponse[rawProblemsetResult]
	if err := c.fetcher.GetJSON(ctx, domain.PlatformCodeforces, "problems", fmt.Sprintf("%s/problemset.problems", apiURL), &problemsResp); err != nil {
		return judge.Snapshot{}, err
	}
	if err := checkStatus(problemsResp.Status, problemsResp.Comment, "problems"); err != nil {
		return judge.Snapshot{}, err
	}

	var contestsResp apiResponse[[]rawContest]
	if err := c.fetcher.GetJSON(ctx, domain.PlatformCodeforces, "contests", fmt.Sprintf("%s/contest.list", apiURL), &contestsResp); err != nil {
		return judge.Snapshot{}, err
	}
	if err := checkStatus(contestsResp.Status, contestsResp.Comment, "contests"); err != nil {
		return judge.Snapshot{}, err
	}

	finished := make([]rawContest, 0, len(contestsResp.Result))
	for _, rc := range contestsResp.Result {
		if rc.Phase == "FINISHED" {
			finished = append(finished, rc)
		}
	}

	return assemble(finished, problemsResp.Result)
}

func checkStatus(status, comment, op string) error {
	if status == "OK" {
		return nil
	}
	return &domain.TransportError{
		Platform: domain.PlatformCodeforces,
		Op:       op,
		Err:      fmt.Errorf("api status %s: %s", status, comment),
	}
}

func assemble(rawContests []rawContest, problemset rawProblemsetResult) (judge.Snapshot, error) {
	categoryByContest := make(map[int64]string, len(rawContests))
	for _, rc := range rawContests {
		categoryByContest[rc.ID] = ClassifyContest(rc)
	}

	// Solved counts are keyed per problem, not per contest.
	solvedCounts := make(map[string]int64, len(problemset.ProblemStatistics))
	for _, st := range problemset.ProblemStatistics {
		solvedCounts[statKey(st.ContestID, st.Index)] = st.SolvedCount
	}

	problemsByContest := make(map[int64][]domain.Problem)
	problems := make([]domain.Problem, 0, len(problemset.Problems))
	for _, rp := range problemset.Problems {
		category, ok := categoryByContest[rp.ContestID]
		if !ok {
			return judge.Snapshot{}, &domain.ReferentialIntegrityError{
				Platform:  domain.PlatformCodeforces,
				ProblemID: statKey(rp.ContestID, rp.Index),
				ContestID: fmt.Sprintf("%d", rp.ContestID),
			}
		}

		var solverCount *int64
		if solved, ok := solvedCounts[statKey(rp.ContestID, rp.Index)]; ok {
			solverCount = &solved
		}
		experimental := false

		problem := domain.ReconstructProblem(
			domain.PlatformCodeforces,
			fmt.Sprintf("%d", rp.ContestID),
			rp.Index,
			rp.Name,
			category,
			rp.Points,
			rp.Rating,
			&experimental,
			rp.Tags,
			fmt.Sprintf("https://codeforces.com/contest/%d/problem/%s", rp.ContestID, rp.Index),
			solverCount,
			nil,
		)
		problems = append(problems, problem)
		problemsByContest[rp.ContestID] = append(problemsByContest[rp.ContestID], problem)
	}

	contests := make([]domain.Contest, 0, len(rawContests))
	for _, rc := range rawContests {
		duration := rc.DurationSeconds
		contests = append(contests, domain.ReconstructContest(
			domain.PlatformCodeforces,
			fmt.Sprintf("%d", rc.ID),
			rc.Name,
			categoryByContest[rc.ID],
			domain.ParsePhase(rc.Phase),
			rc.StartTimeSeconds,
			&duration,
			fmt.Sprintf("https://codeforces.com/contest/%d", rc.ID),
			problemsByContest[rc.ID],
		))
	}

	return judge.Snapshot{Problems: problems, Contests: contests}, nil
}

func statKey(contestID int64, index string) string {
	return fmt.Sprintf("%d_%s", contestID, index)
}

func buildSubmission(s rawSubmission) domain.Submission {
	handle := ""
	if len(s.Author.Members) > 0 {
		handle = s.Author.Members[0].Handle
	}

	var contestID *string
	if s.ContestID != nil {
		id := fmt.Sprintf("%d", *s.ContestID)
		contestID = &id
	}

	memoryKB := s.MemoryConsumedBytes / 1024
	index := s.Problem.Index
	name := s.Problem.Name

	return domain.ReconstructSubmission(
		domain.PlatformCodeforces,
		fmt.Sprintf("%d", s.ID),
		handle,
		s.ProgrammingLanguage,
		domain.ParseVerdict(s.Verdict),
		&s.TimeConsumedMillis,
		&memoryKB,
		nil,
		s.CreationTimeSeconds,
		domain.SubmissionProblem{
			ContestID:  contestID,
			Index:      &index,
			Name:       &name,
			RawPoint:   s.Problem.Points,
			Difficulty: s.Problem.Rating,
		},
	)
}
