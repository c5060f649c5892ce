package secondary

import "gitlab.com/judgehub-2025.net/internal/domain"

const (
	defaultPage           = 1
	defaultProblemPerPage = 20
	defaultContestPerPage = 100
)

// ProblemCondition narrows problem reads. Zero-valued fields are not
// applied. DifficultyFrom/DifficultyTo form an inclusive range.
type ProblemCondition struct {
	Platform       *domain.Platform
	Category       *string
	TagIDs         []int64
	DifficultyFrom *float64
	DifficultyTo   *float64
	Page           int
	PerPage        int
}

func (c *ProblemCondition) Normalize() {
	if c.Page < 1 {
		c.Page = defaultPage
	}
	if c.PerPage < 1 {
		c.PerPage = defaultProblemPerPage
	}
}

func (c *ProblemCondition) Offset() int {
	return (c.Page - 1) * c.PerPage
}

type ContestCondition struct {
	Platform *domain.Platform
	Category *string
	Page     int
	PerPage  int
}

func (c *ContestCondition) Normalize() {
	if c.Page < 1 {
		c.Page = defaultPage
	}
	if c.PerPage < 1 {
		c.PerPage = defaultContestPerPage
	}
}

func (c *ContestCondition) Offset() int {
	return (c.Page - 1) * c.PerPage
}

// SubmissionCondition drives read-through submission fetches. Page
// semantics are platform specific and interpreted by each client.
type SubmissionCondition struct {
	UserID     string
	FromSecond int64
	Page       int
}
