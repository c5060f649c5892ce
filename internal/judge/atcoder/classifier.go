package atcoder

import (
	"regexp"
	"strconv"
	"strings"
)

// Contest categories, closed set. Unrecognized contests land on Other.
const (
	CategoryABC            = "ABC"
	CategoryARC            = "ARC"
	CategoryAGC            = "AGC"
	CategoryAHC            = "AHC"
	CategoryPAST           = "PAST"
	CategoryJOI            = "JOI"
	CategoryJAG            = "JAG"
	CategoryABCLike        = "ABC-Like"
	CategoryARCLike        = "ARC-Like"
	CategoryAGCLike        = "AGC-Like"
	CategoryMarathon       = "Marathon"
	CategoryOtherSponsored = "Other Sponsored"
	CategoryOther          = "Other"
)

// agc001Start is the start time of the first AGC. Contests starting
// before it predate the current rating system and count as unrated.
const agc001Start int64 = 1_468_670_400

// Heuristic contests that do not follow the ahcNNN naming convention.
var ahcSpecialContests = map[string]struct{}{
	"toyota2023summer-final": {},
}

var (
	abcPattern = regexp.MustCompile(`^abc\d{3,}`)
	arcPattern = regexp.MustCompile(`^arc\d{3,}`)
	agcPattern = regexp.MustCompile(`^agc\d{3,}`)
	ahcPattern = regexp.MustCompile(`^ahc\d{3,}`)
	jagPattern = regexp.MustCompile(`^(jag|JAG)`)

	marathonNamePattern = regexp.MustCompile(`(^Chokudai Contest|ハーフマラソン|^HACK TO THE FUTURE|Asprova|Heuristics Contest)`)
	marathonIDPattern   = regexp.MustCompile(`(^future-meets-you-contest|^hokudai-hitachi|^toyota-hc)`)

	sponsoredNamePattern = regexp.MustCompile(`ドワンゴ|^Mujin|SoundHound|^codeFlyer|^COLOCON|みんなのプロコン|CODE THANKS FESTIVAL|CODE FESTIVAL|^DISCO|日本最強プログラマー学生選手権|全国統一プログラミング王|Indeed|^Donuts|^dwango|^DigitalArts|^Code Formula|天下一プログラマーコンテスト|^Toyota`)
)

var marathonIDs = map[string]struct{}{
	"toyota2023summer-final-open": {},
	"genocon2021":                 {},
	"stage0-2021":                 {},
	"caddi2019":                   {},
	"pakencamp-2019-day2":         {},
	"kuronekoyamato-contest2019":  {},
	"wn2017_1":                    {},
}

// ClassifyContest maps a raw contest to its category. Rules are ordered
// and the first match wins; id conventions take precedence over every
// title heuristic.
func ClassifyContest(c rawContest) string {
	switch {
	case abcPattern.MatchString(c.ID):
		return CategoryABC
	case arcPattern.MatchString(c.ID):
		return CategoryARC
	case agcPattern.MatchString(c.ID):
		return CategoryAGC
	case ahcPattern.MatchString(c.ID):
		return CategoryAHC
	}
	if _, ok := ahcSpecialContests[c.ID]; ok {
		return CategoryAHC
	}

	if isRatedContest(c) {
		if cat, ok := classifyRatedContest(c); ok {
			return cat
		}
	}

	if strings.HasPrefix(c.ID, "past") {
		return CategoryPAST
	}
	if strings.HasPrefix(c.ID, "joi") {
		return CategoryJOI
	}
	if jagPattern.MatchString(c.ID) {
		return CategoryJAG
	}

	if marathonNamePattern.MatchString(c.Title) || marathonIDPattern.MatchString(c.ID) {
		return CategoryMarathon
	}
	if _, ok := marathonIDs[c.ID]; ok {
		return CategoryMarathon
	}

	if sponsoredNamePattern.MatchString(c.Title) {
		return CategoryOtherSponsored
	}

	return CategoryOther
}

func isRatedContest(c rawContest) bool {
	return c.RateChange != "-" && c.StartEpochSecond >= agc001Start
}

// classifyRatedContest buckets a rated contest by the ceiling of its
// rated range: capped below 2000 plays like an ABC, capped above like
// an ARC, uncapped ("All") like an AGC. Malformed ranges fall through
// to the remaining rules instead of erroring.
func classifyRatedContest(c rawContest) (string, bool) {
	if c.RateChange == "All" {
		return CategoryAGCLike, true
	}

	parts := strings.Split(c.RateChange, "~")
	if len(parts) != 2 {
		return "", false
	}

	upper, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return "", false
	}
	if upper < 2000 {
		return CategoryABCLike, true
	}
	return CategoryARCLike, true
}
