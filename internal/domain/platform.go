package domain

// Platform identifies one external judge. The set is closed; anything
// else parses to PlatformUnknown instead of failing.
type Platform string

const (
	PlatformAtcoder        Platform = "atcoder"
	PlatformCodeforces     Platform = "codeforces"
	PlatformYukicoder      Platform = "yukicoder"
	PlatformAoj            Platform = "aoj"
	PlatformLibraryChecker Platform = "yosupo_online_judge"
	PlatformUnknown        Platform = "unknown"
)

// AllPlatforms lists every syncable platform in a stable order.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformAtcoder,
		PlatformCodeforces,
		PlatformYukicoder,
		PlatformAoj,
		PlatformLibraryChecker,
	}
}

// ParsePlatform maps a wire string to a Platform.
func ParsePlatform(value string) Platform {
	switch value {
	case "atcoder":
		return PlatformAtcoder
	case "codeforces":
		return PlatformCodeforces
	case "yukicoder":
		return PlatformYukicoder
	case "aoj":
		return PlatformAoj
	case "yosupo_online_judge":
		return PlatformLibraryChecker
	default:
		return PlatformUnknown
	}
}

func (p Platform) String() string {
	return string(p)
}

// IsKnown reports whether p is one of the syncable platforms.
func (p Platform) IsKnown() bool {
	switch p {
	case PlatformAtcoder, PlatformCodeforces, PlatformYukicoder, PlatformAoj, PlatformLibraryChecker:
		return true
	default:
		return false
	}
}
