package atcoder

// Wire types for the unofficial AtCoder statistics API (kenkoooo).
// Raw data lives at https://kenkoooo.com/atcoder/resources/*.json.

type rawContest struct {
	ID               string `json:"id"`
	StartEpochSecond int64  `json:"start_epoch_second"`
	DurationSecond   int64  `json:"duration_second"`
	Title            string `json:"title"`
	RateChange       string `json:"rate_change"`
}

type rawProblem struct {
	ID           string   `json:"id"`
	ContestID    string   `json:"contest_id"`
	ProblemIndex string   `json:"problem_index"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Point        *float64 `json:"point"`
	SolverCount  *int64   `json:"solver_count"`
}

// rawEstimation carries the IRT model output per problem id.
type rawEstimation struct {
	Difficulty     *float64 `json:"difficulty"`
	IsExperimental *bool    `json:"is_experimental"`
}

type rawSubmission struct {
	ID            int64   `json:"id"`
	EpochSecond   int64   `json:"epoch_second"`
	ProblemID     string  `json:"problem_id"`
	ContestID     string  `json:"contest_id"`
	UserID        string  `json:"user_id"`
	Language      string  `json:"language"`
	Point         float64 `json:"point"`
	Length        int64   `json:"length"`
	Result        string  `json:"result"`
	ExecutionTime *int64  `json:"execution_time"`
}
