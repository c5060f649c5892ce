package codeforces

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyContest(t *testing.T) {
	cases := map[string]string{
		"Educational Codeforces Round 165 (Rated for Div. 2)": CategoryEducational,
		"Codeforces Global Round 16":                          CategoryGlobal,
		"Codeforces Kotlin Heroes: Episode 8":                 CategoryKotlin,
		"Codeforces ICPC Round #X":                            CategoryICPC,
		"Microsoft Q# Coding Contest - Summer 2020":           CategoryQSharp,
		"Codeforces Round #726 (Div. 1)":                      CategoryDiv1,
		"Codeforces Round #726 (Div. 2)":                      CategoryDiv2,
		"Codeforces Round #726 (Div. 3)":                      CategoryDiv3,
		"Codeforces Round #726 (Div. 4)":                      CategoryDiv4,
		"NOT_CLASSIFIED":                                      CategoryOther,
	}
	for name, want := range cases {
		assert.Equal(t, want, ClassifyContest(rawContest{Name: name}), "name=%s", name)
	}
}

func TestClassifyContestCombinedDivisionWinsOverSingle(t *testing.T) {
	got := ClassifyContest(rawContest{Name: "Codeforces Round #726 (Div. 1 + Div. 2)"})
	assert.Equal(t, CategoryDiv1AndDiv2, got)
}
