package yukicoder

import "strings"

const (
	CategoryNormal = "Normal"
	CategoryOther  = "Other"
)

// ClassifyContest separates the regular numbered rounds from
// everything else (anniversary sets, user-hosted contests).
func ClassifyContest(c rawContest) string {
	if strings.HasPrefix(c.Name, "yukicoder contest") {
		return CategoryNormal
	}
	return CategoryOther
}
