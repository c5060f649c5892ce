package domain

// Canonical identifiers. These must be referentially transparent:
// storage upserts resolve conflicts on them, so the same raw input has
// to synthesize the same id on every fetch cycle. Raw ids are used
// verbatim; callers pass them already trimmed.

// ContestID synthesizes the canonical contest identifier.
func ContestID(platform Platform, rawID string) string {
	return string(platform) + "_" + rawID
}

// ProblemID synthesizes the canonical problem identifier from the
// problem's parent contest and its ordinal index within it.
func ProblemID(platform Platform, rawContestID, index string) string {
	return string(platform) + "_" + rawContestID + "_" + index
}

// SubmissionID synthesizes the canonical submission identifier.
func SubmissionID(platform Platform, rawID string) string {
	return string(platform) + "_" + rawID
}
