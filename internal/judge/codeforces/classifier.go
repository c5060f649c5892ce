package codeforces

import "strings"

// Contest categories, closed set.
const (
	CategoryEducational = "Educational"
	CategoryGlobal      = "Global"
	CategoryKotlin      = "Kotlin"
	CategoryICPC        = "ICPC"
	CategoryQSharp      = "Q#"
	CategoryDiv1AndDiv2 = "Div. 1 + Div. 2"
	CategoryDiv1        = "Div. 1"
	CategoryDiv2        = "Div. 2"
	CategoryDiv3        = "Div. 3"
	CategoryDiv4        = "Div. 4"
	CategoryOther       = "Other"
)

// classifierRules are checked in order and the first match wins. The
// combined division marker must precede the single divisions because
// its name contains both.
var classifierRules = []struct {
	marker   string
	category string
}{
	{"Educational", CategoryEducational},
	{"Global Round", CategoryGlobal},
	{"Kotlin", CategoryKotlin},
	{"ICPC", CategoryICPC},
	{"Q#", CategoryQSharp},
	{"Div. 1 + Div. 2", CategoryDiv1AndDiv2},
	{"Div. 1", CategoryDiv1},
	{"Div. 2", CategoryDiv2},
	{"Div. 3", CategoryDiv3},
	{"Div. 4", CategoryDiv4},
}

// ClassifyContest maps a raw contest to its category by contest name.
func ClassifyContest(c rawContest) string {
	for _, rule := range classifierRules {
		if strings.Contains(c.Name, rule.marker) {
			return rule.category
		}
	}
	return CategoryOther
}
