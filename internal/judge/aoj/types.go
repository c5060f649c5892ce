package aoj

// Wire types for the Aizu Online Judge API (judgeapi.u-aizu.ac.jp).

type rawProblem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SolvedUser  int64  `json:"solvedUser"`
	Submissions int64  `json:"submissions"`
}

type rawVolume struct {
	Problems []rawProblem `json:"problems"`
}

type rawFilters struct {
	Volumes  []int    `json:"volumes"`
	LargeCls []string `json:"largeCls"`
}

type rawMiddleCl struct {
	ID string `json:"id"`
}

type rawLargeCl struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	MiddleCls []rawMiddleCl `json:"middleCls"`
}

type rawChallenges struct {
	LargeCls []rawLargeCl `json:"largeCls"`
}

type rawDay struct {
	Day      int          `json:"day"`
	Title    string       `json:"title"`
	Problems []rawProblem `json:"problems"`
}

type rawChallengeContest struct {
	Abbr     string   `json:"abbr"`
	LargeCl  string   `json:"largeCl"`
	MiddleCl string   `json:"middleCl"`
	Year     int      `json:"year"`
	Days     []rawDay `json:"days"`
}

type rawChallengeListing struct {
	Contests []rawChallengeContest `json:"contests"`
}

type rawSubmission struct {
	JudgeID        int64   `json:"judgeId"`
	UserID         string  `json:"userId"`
	ProblemID      string  `json:"problemId"`
	SubmissionDate int64   `json:"submissionDate"`
	Language       string  `json:"language"`
	Status         int     `json:"status"`
	CPUTime        int64   `json:"cpuTime"`
	Memory         int64   `json:"memory"`
	CodeSize       int64   `json:"codeSize"`
	ProblemTitle   *string `json:"problemTitle"`
}
