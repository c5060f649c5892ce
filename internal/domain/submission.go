package domain

// SubmissionProblem is the minimal problem reference embedded in a
// submission. Platforms differ in how much of it they return; absent
// fields stay nil.
type SubmissionProblem struct {
	ContestID  *string  `json:"contest_id,omitempty"`
	Index      *string  `json:"index,omitempty"`
	Name       *string  `json:"name,omitempty"`
	RawPoint   *float64 `json:"raw_point,omitempty"`
	Difficulty *float64 `json:"difficulty,omitempty"`
}

// Submission is a canonical submission. Submissions are read-through
// only: they are rebuilt from the platform on every request and never
// persisted.
type Submission struct {
	ID             string            `json:"id"`
	RawID          string            `json:"raw_id"`
	UserID         string            `json:"user_id"`
	Language       Language          `json:"language"`
	RawLanguage    string            `json:"raw_language"`
	Platform       Platform          `json:"platform"`
	Verdict        Verdict           `json:"verdict"`
	ExecutionTime  *int64            `json:"execution_time,omitempty"`
	Memory         *int64            `json:"memory,omitempty"`
	CodeSize       *int64            `json:"code_size,omitempty"`
	SubmissionDate int64             `json:"submission_date"`
	Problem        SubmissionProblem `json:"problem"`
}

// ReconstructSubmission builds a Submission from raw platform fields.
// Units are already normalized by the caller (execution time in
// milliseconds, memory in KB, epoch seconds).
func ReconstructSubmission(
	platform Platform,
	rawID string,
	userID string,
	rawLanguage string,
	verdict Verdict,
	executionTime *int64,
	memory *int64,
	codeSize *int64,
	submissionDate int64,
	problem SubmissionProblem,
) Submission {
	return Submission{
		ID:             SubmissionID(platform, rawID),
		RawID:          rawID,
		UserID:         userID,
		Language:       NormalizeLanguage(rawLanguage),
		RawLanguage:    rawLanguage,
		Platform:       platform,
		Verdict:        verdict,
		ExecutionTime:  executionTime,
		Memory:         memory,
		CodeSize:       codeSize,
		SubmissionDate: submissionDate,
		Problem:        problem,
	}
}
