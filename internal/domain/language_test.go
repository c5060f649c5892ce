package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		raw  string
		want Language
	}{
		{"C++ (GCC 9.2.1)", LanguageCPP},
		{"C++17 (Clang 10.0.0)", LanguageCPP},
		{"PyPy3 (7.3.0)", LanguagePython},
		{"Python (3.8.2)", LanguagePython},
		{"Java (OpenJDK 11.0.6)", LanguageJava},
		{"JavaScript (Node.js 12.16.1)", LanguageJavaScript},
		{"GNU C11", LanguageC},
		{"Rust (1.42.0)", LanguageRust},
		{"Go (1.14.1)", LanguageGo},
		{"Kotlin (1.3.71)", LanguageKotlin},
		{"Delphi 7", LanguageDelphi},
		{"D (DMD 2.091.0)", LanguageD},
		{"R", LanguageR},
		{"Brainfuck", LanguageOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeLanguage(tc.raw), "raw=%q", tc.raw)
	}
}

func TestParseVerdict_UnknownFallsThrough(t *testing.T) {
	assert.Equal(t, VerdictAccepted, ParseVerdict("AC"))
	assert.Equal(t, VerdictWrongAnswer, ParseVerdict("WA"))
	assert.Equal(t, VerdictUnknown, ParseVerdict("SOMETHING_ELSE"))
}

func TestParsePlatform_UnknownFallsThrough(t *testing.T) {
	for _, p := range AllPlatforms() {
		assert.Equal(t, p, ParsePlatform(p.String()))
	}
	assert.Equal(t, PlatformUnknown, ParsePlatform("leetcode"))
}

func TestParsePhase(t *testing.T) {
	assert.Equal(t, PhaseFinished, ParsePhase("FINISHED"))
	assert.Equal(t, PhaseBefore, ParsePhase("before"))
	assert.Equal(t, PhaseCoding, ParsePhase("CODING"))
	assert.Equal(t, PhaseUnknown, ParsePhase("SYSTEM_TEST"))
}
