package yukicoder

// Wire types for the yukicoder REST API (https://yukicoder.me/api/v1).

type rawProblem struct {
	No        int64   `json:"No"`
	ProblemID int64   `json:"ProblemId"`
	Title     string  `json:"Title"`
	Level     float64 `json:"Level"`
	Tags      string  `json:"Tags"`
	Date      string  `json:"Date"`
}

type rawStatistics struct {
	Total  int64 `json:"Total"`
	Solved int64 `json:"Solved"`
}

type rawProblemWithStatistics struct {
	No         int64         `json:"No"`
	ProblemID  int64         `json:"ProblemId"`
	Title      string        `json:"Title"`
	Level      float64       `json:"Level"`
	Tags       string        `json:"Tags"`
	Date       string        `json:"Date"`
	Statistics rawStatistics `json:"Statistics"`
}

type rawContest struct {
	ID            int64   `json:"Id"`
	Name          string  `json:"Name"`
	Date          string  `json:"Date"`
	EndDate       string  `json:"EndDate"`
	ProblemIDList []int64 `json:"ProblemIdList"`
}
