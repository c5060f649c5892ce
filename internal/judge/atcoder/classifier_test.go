package atcoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func contestWithID(id string) rawContest {
	return rawContest{
		ID:               id,
		Title:            "default_title",
		StartEpochSecond: agc001Start + 1,
		RateChange:       "-",
	}
}

func contestWithTitle(title string) rawContest {
	c := contestWithID("default_id")
	c.Title = title
	return c
}

func contestWithRateChange(rateChange string) rawContest {
	c := contestWithID("default_id")
	c.RateChange = rateChange
	return c
}

func TestClassifyContestByIDConvention(t *testing.T) {
	cases := map[string]string{
		"abc001":  CategoryABC,
		"abc1000": CategoryABC,
		"arc001":  CategoryARC,
		"arc1000": CategoryARC,
		"agc001":  CategoryAGC,
		"agc1000": CategoryAGC,
		"ahc001":  CategoryAHC,
		"ahc1000": CategoryAHC,

		"toyota2023summer-final": CategoryAHC,

		"past15-open":        CategoryPAST,
		"joi2006yo":          CategoryJOI,
		"jag2015summer-day2": CategoryJAG,
		"JAG2015summer-day2": CategoryJAG,

		"other": CategoryOther,
	}
	for id, want := range cases {
		assert.Equal(t, want, ClassifyContest(contestWithID(id)), "id=%s", id)
	}
}

func TestClassifyContestByRatedRange(t *testing.T) {
	assert.Equal(t, CategoryABCLike, ClassifyContest(contestWithRateChange(" ~ 1999")))
	assert.Equal(t, CategoryARCLike, ClassifyContest(contestWithRateChange(" ~ 2799")))
	assert.Equal(t, CategoryAGCLike, ClassifyContest(contestWithRateChange("All")))
}

func TestClassifyContestMalformedRatedRange(t *testing.T) {
	// An unparseable range must fall through, never error.
	assert.Equal(t, CategoryOther, ClassifyContest(contestWithRateChange("1200 ~ 1800 ~ 2400")))
	assert.Equal(t, CategoryOther, ClassifyContest(contestWithRateChange(" ~ garbage")))
}

func TestClassifyContestUnratedBeforeAGC001(t *testing.T) {
	c := contestWithRateChange("All")
	c.StartEpochSecond = agc001Start - 1
	assert.Equal(t, CategoryOther, ClassifyContest(c))
}

func TestClassifyContestMarathon(t *testing.T) {
	for _, title := range []string{
		"Chokudai Contest",
		"ハーフマラソン",
		"HACK TO THE FUTURE",
		"Asprova",
		"Heuristics Contest",
	} {
		assert.Equal(t, CategoryMarathon, ClassifyContest(contestWithTitle(title)), "title=%s", title)
	}

	for _, id := range []string{
		"future-meets-you-contest",
		"hokudai-hitachi",
		"toyota-hc",
		"genocon2021",
		"stage0-2021",
		"caddi2019",
		"pakencamp-2019-day2",
	} {
		assert.Equal(t, CategoryMarathon, ClassifyContest(contestWithID(id)), "id=%s", id)
	}
}

func TestClassifyContestOtherSponsored(t *testing.T) {
	for _, title := range []string{
		"ドワンゴ",
		"Mujin",
		"SoundHound",
		"codeFlyer",
		"COLOCON",
		"みんなのプロコン",
		"CODE THANKS FESTIVAL",
		"CODE FESTIVAL",
		"DISCO",
		"日本最強プログラマー学生選手権",
		"全国統一プログラミング王",
		"Indeed",
		"Donuts",
		"dwango",
		"DigitalArts",
		"Code Formula",
		"天下一プログラマーコンテスト",
		"Toyota",
	} {
		assert.Equal(t, CategoryOtherSponsored, ClassifyContest(contestWithTitle(title)), "title=%s", title)
	}
}

func TestClassifyContestIDBeatsSponsorTitle(t *testing.T) {
	c := contestWithID("abc001")
	c.Title = "Toyota Programming Contest (AtCoder Beginner Contest 001)"
	assert.Equal(t, CategoryABC, ClassifyContest(c))
}
