package domain

// Contest is a canonical contest with its owned problems. The
// ownership only exists on this in-memory aggregate; storage keeps a
// contest_problems join table instead.
type Contest struct {
	ID               string    `db:"id" json:"id"`
	RawID            string    `db:"raw_id" json:"raw_id"`
	Name             string    `db:"name" json:"name"`
	Category         string    `db:"category" json:"category"`
	Platform         Platform  `db:"platform" json:"platform"`
	Phase            Phase     `db:"phase" json:"phase"`
	StartTimeSeconds *int64    `db:"start_time_seconds" json:"start_time_seconds,omitempty"`
	DurationSeconds  *int64    `db:"duration_seconds" json:"duration_seconds,omitempty"`
	URL              string    `db:"url" json:"url"`
	Problems         []Problem `json:"problems"`
}

// ReconstructContest builds a Contest from raw platform fields. The id
// is synthesized from (platform, raw id); timing fields stay nil for
// platforms without timed contests.
func ReconstructContest(
	platform Platform,
	rawID string,
	name string,
	category string,
	phase Phase,
	startTimeSeconds *int64,
	durationSeconds *int64,
	url string,
	problems []Problem,
) Contest {
	if problems == nil {
		problems = []Problem{}
	}

	return Contest{
		ID:               ContestID(platform, rawID),
		RawID:            rawID,
		Name:             name,
		Category:         category,
		Platform:         platform,
		Phase:            phase,
		StartTimeSeconds: startTimeSeconds,
		DurationSeconds:  durationSeconds,
		URL:              url,
		Problems:         problems,
	}
}

type ContestTable struct {
	ID               string
	RawID            string
	Name             string
	Category         string
	Platform         string
	Phase            string
	StartTimeSeconds string
	DurationSeconds  string
	URL              string
}

func (ContestTable) TableName() string { return "contests" }

func GetContestTable() ContestTable {
	return ContestTable{
		ID:               "id",
		RawID:            "raw_id",
		Name:             "name",
		Category:         "category",
		Platform:         "platform",
		Phase:            "phase",
		StartTimeSeconds: "start_time_seconds",
		DurationSeconds:  "duration_seconds",
		URL:              "url",
	}
}

func (t ContestTable) Columns() []string {
	return []string{
		t.ID, t.RawID, t.Name, t.Category, t.Platform, t.Phase,
		t.StartTimeSeconds, t.DurationSeconds, t.URL,
	}
}

type ContestProblemTable struct {
	ContestID string
	ProblemID string
}

func GetContestProblemTable() ContestProblemTable {
	return ContestProblemTable{
		ContestID: "contest_id",
		ProblemID: "problem_id",
	}
}

func (t ContestProblemTable) GetTableName() string {
	return "contest_problems"
}
