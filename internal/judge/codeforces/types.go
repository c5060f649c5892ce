package codeforces

// Wire types for the official Codeforces API. Every endpoint wraps its
// payload in {status, result}.

type apiResponse[T any] struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Result  T      `json:"result"`
}

type rawProblem struct {
	ContestID int64    `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Points    *float64 `json:"points"`
	Rating    *float64 `json:"rating"`
	Tags      []string `json:"tags"`
}

type rawProblemStat struct {
	ContestID   int64  `json:"contestId"`
	Index       string `json:"index"`
	SolvedCount int64  `json:"solvedCount"`
}

type rawProblemsetResult struct {
	Problems          []rawProblem     `json:"problems"`
	ProblemStatistics []rawProblemStat `json:"problemStatistics"`
}

type rawContest struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Phase            string `json:"phase"`
	DurationSeconds  int64  `json:"durationSeconds"`
	StartTimeSeconds *int64 `json:"startTimeSeconds"`
}

type rawParty struct {
	Members []rawMember `json:"members"`
}

type rawMember struct {
	Handle string `json:"handle"`
}

type rawSubmission struct {
	ID                  int64      `json:"id"`
	ContestID           *int64     `json:"contestId"`
	CreationTimeSeconds int64      `json:"creationTimeSeconds"`
	Problem             rawProblem `json:"problem"`
	Author              rawParty   `json:"author"`
	ProgrammingLanguage string     `json:"programmingLanguage"`
	Verdict             string     `json:"verdict"`
	TimeConsumedMillis  int64      `json:"timeConsumedMillis"`
	MemoryConsumedBytes int64      `json:"memoryConsumedBytes"`
}
