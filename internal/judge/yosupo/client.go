package yosupo

import (
	"context"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
	"gitlab.com/judgehub-2025.net/internal/judge"
)

const categoriesURL = "https://raw.githubusercontent.com/yosupo06/library-checker-problems/master/categories.toml"

// Client builds the Library Checker dataset from the problem
// repository's category listing. The judge has no timed contests, so
// each category becomes one pseudo-contest with a terminal phase and
// no timing data.
type Client struct {
	fetcher *judge.Fetcher
	cache   judge.ResultCache
}

var _ secondary.JudgeClient = (*Client)(nil)

func NewClient(fetcher *judge.Fetcher) *Client {
	return &Client{fetcher: fetcher}
}

func (c *Client) Platform() domain.Platform {
	return domain.PlatformLibraryChecker
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

func (c *Client) buildSnapshot(ctx context.Context) (judge.Snapshot, error) {
	body, err := c.fetcher.GetText(ctx, domain.PlatformLibraryChecker, "categories", categoriesURL)
	if err != nil {
		return judge.Snapshot{}, err
	}

	var listing rawCategories
	if err := toml.Unmarshal(body, &listing); err != nil {
		return judge.Snapshot{}, &domain.TransportError{
			Platform: domain.PlatformLibraryChecker,
			Op:       "categories",
			Err:      fmt.Errorf("parse categories toml: %w", err),
		}
	}

	return assemble(listing), nil
}

func assemble(listing rawCategories) judge.Snapshot {
	var problems []domain.Problem
	contests := make([]domain.Contest, 0, len(listing.Categories))

	for _, category := range listing.Categories {
		categoryProblems := make([]domain.Problem, 0, len(category.Problems))
		for i, slug := range category.Problems {
			problem := domain.ReconstructProblem(
				domain.PlatformLibraryChecker,
				category.Name,
				judge.NumToAlphabet(i+1),
				titleFromSlug(slug),
				ClassifyCategory(category.Name),
				nil,
				nil,
				nil,
				nil,
				fmt.Sprintf("https://judge.yosupo.jp/problem/%s", slug),
				nil,
				nil,
			)
			categoryProblems = append(categoryProblems, problem)
			problems = append(problems, problem)
		}

		contests = append(contests, domain.ReconstructContest(
			domain.PlatformLibraryChecker,
			category.Name,
			category.Name,
			ClassifyCategory(category.Name),
			domain.PhaseFinished,
			nil,
			nil,
			"https://judge.yosupo.jp/",
			categoryProblems,
		))
	}

	return judge.Snapshot{Problems: problems, Contests: contests}
}

// titleFromSlug turns a repository problem slug into a display name:
// "static_range_sum" -> "Static Range Sum".
func titleFromSlug(slug string) string {
	words := strings.Split(slug, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
