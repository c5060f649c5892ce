package domain

// Problem is a canonical problem normalized from one raw platform
// record. Instances are built only through ReconstructProblem and are
// never mutated afterwards; the next fetch cycle supersedes them.
type Problem struct {
	ID             string   `db:"id" json:"id"`
	ContestID      string   `db:"contest_id" json:"contest_id"`
	Index          string   `db:"problem_index" json:"index"`
	Name           string   `db:"name" json:"name"`
	Title          string   `db:"title" json:"title"`
	Platform       Platform `db:"platform" json:"platform"`
	Category       string   `db:"category" json:"category"`
	RawPoint       *float64 `db:"raw_point" json:"raw_point,omitempty"`
	Difficulty     *float64 `db:"difficulty" json:"difficulty,omitempty"`
	IsExperimental *bool    `db:"is_experimental" json:"is_experimental,omitempty"`
	Tags           []string `db:"tags" json:"tags"`
	URL            string   `db:"url" json:"url"`
	SolverCount    *int64   `db:"solver_count" json:"solver_count,omitempty"`
	Submissions    *int64   `db:"submissions" json:"submissions,omitempty"`
	SuccessRate    *float64 `db:"success_rate" json:"success_rate,omitempty"`
}

// ReconstructProblem builds a Problem from raw platform fields. The id
// is synthesized from (platform, raw contest id, index) and the title
// from "<index>. <name>"; the success rate is derived from the two
// counters and stays absent unless both are known. rawDifficulty is
// the already-clipped display value.
func ReconstructProblem(
	platform Platform,
	rawContestID string,
	index string,
	name string,
	category string,
	rawPoint *float64,
	difficulty *float64,
	isExperimental *bool,
	tags []string,
	url string,
	solverCount *int64,
	submissions *int64,
) Problem {
	if tags == nil {
		tags = []string{}
	}

	return Problem{
		ID:             ProblemID(platform, rawContestID, index),
		ContestID:      ContestID(platform, rawContestID),
		Index:          index,
		Name:           name,
		Title:          index + ". " + name,
		Platform:       platform,
		Category:       category,
		RawPoint:       rawPoint,
		Difficulty:     difficulty,
		IsExperimental: isExperimental,
		Tags:           tags,
		URL:            url,
		SolverCount:    solverCount,
		Submissions:    submissions,
		SuccessRate:    SuccessRate(solverCount, submissions),
	}
}

type ProblemTable struct {
	ID             string
	ContestID      string
	Index          string
	Name           string
	Title          string
	Platform       string
	Category       string
	RawPoint       string
	Difficulty     string
	IsExperimental string
	URL            string
	SolverCount    string
	Submissions    string
	SuccessRate    string
}

func (ProblemTable) TableName() string { return "problems" }

func GetProblemTable() ProblemTable {
	return ProblemTable{
		ID:             "id",
		ContestID:      "contest_id",
		Index:          "problem_index",
		Name:           "name",
		Title:          "title",
		Platform:       "platform",
		Category:       "category",
		RawPoint:       "raw_point",
		Difficulty:     "difficulty",
		IsExperimental: "is_experimental",
		URL:            "url",
		SolverCount:    "solver_count",
		Submissions:    "submissions",
		SuccessRate:    "success_rate",
	}
}

func (t ProblemTable) Columns() []string {
	return []string{
		t.ID, t.ContestID, t.Index, t.Name, t.Title, t.Platform, t.Category,
		t.RawPoint, t.Difficulty, t.IsExperimental, t.URL, t.SolverCount,
		t.Submissions, t.SuccessRate,
	}
}
