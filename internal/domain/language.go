package domain

import (
	"regexp"
	"strings"
)

// Language is the normalized programming language of a submission.
type Language string

const (
	LanguageCPP        Language = "C++"
	LanguagePython     Language = "Python"
	LanguageJava       Language = "Java"
	LanguageC          Language = "C"
	LanguageCSharp     Language = "C#"
	LanguageKotlin     Language = "Kotlin"
	LanguageJavaScript Language = "JavaScript"
	LanguageTypeScript Language = "TypeScript"
	LanguageRuby       Language = "Ruby"
	LanguageGo         Language = "Go"
	LanguageRust       Language = "Rust"
	LanguageSwift      Language = "Swift"
	LanguageHaskell    Language = "Haskell"
	LanguageScala      Language = "Scala"
	LanguagePHP        Language = "PHP"
	LanguagePerl       Language = "Perl"
	LanguageFPC        Language = "FPC"
	LanguageOCaml      Language = "OCaml"
	LanguageBash       Language = "Bash"
	LanguageLua        Language = "Lua"
	LanguageNodeJS     Language = "Node.js"
	LanguageD          Language = "D"
	LanguageNim        Language = "Nim"
	LanguageCrystal    Language = "Crystal"
	LanguageAda        Language = "Ada"
	LanguageDelphi     Language = "Delphi"
	LanguageR          Language = "R"
	LanguageOther      Language = "Other"
)

// versionSuffix strips trailing parenthesized qualifiers such as
// "C++ (GCC 9.2.1)" -> "C++".
var versionSuffix = regexp.MustCompile(`\s+\(.*\)`)

// NormalizeLanguage folds a platform's raw language label into a
// Language. Checks are ordered by prevalence; Delphi runs before the
// bare "d" prefix so it does not get swallowed by D.
func NormalizeLanguage(raw string) Language {
	lang := strings.ToLower(versionSuffix.ReplaceAllString(raw, ""))

	switch {
	case strings.Contains(lang, "c++"), strings.Contains(lang, "cpp"), strings.Contains(lang, "clang++"):
		return LanguageCPP
	case strings.Contains(lang, "python"), strings.Contains(lang, "pypy"):
		return LanguagePython
	case strings.Contains(lang, "java") && !strings.Contains(lang, "javascript"):
		return LanguageJava
	case strings.Contains(lang, "c#"):
		return LanguageCSharp
	case strings.Contains(lang, "rust"):
		return LanguageRust
	case strings.Contains(lang, "go"):
		return LanguageGo
	case strings.Contains(lang, "kotlin"):
		return LanguageKotlin
	case strings.Contains(lang, "javascript"):
		return LanguageJavaScript
	case strings.Contains(lang, "typescript"):
		return LanguageTypeScript
	case lang == "c", strings.Contains(lang, "gnu c11"):
		return LanguageC
	case strings.Contains(lang, "ruby"):
		return LanguageRuby
	case strings.Contains(lang, "swift"):
		return LanguageSwift
	case strings.Contains(lang, "haskell"):
		return LanguageHaskell
	case strings.Contains(lang, "scala"):
		return LanguageScala
	case strings.Contains(lang, "php"):
		return LanguagePHP
	case strings.Contains(lang, "perl"):
		return LanguagePerl
	case strings.Contains(lang, "fpc"):
		return LanguageFPC
	case strings.Contains(lang, "ocaml"):
		return LanguageOCaml
	case strings.Contains(lang, "bash"):
		return LanguageBash
	case strings.Contains(lang, "lua"):
		return LanguageLua
	case strings.Contains(lang, "node"):
		return LanguageNodeJS
	case strings.Contains(lang, "nim"):
		return LanguageNim
	case strings.Contains(lang, "crystal"):
		return LanguageCrystal
	case strings.Contains(lang, "ada"):
		return LanguageAda
	case strings.Contains(lang, "delphi"):
		return LanguageDelphi
	case strings.HasPrefix(lang, "d"):
		return LanguageD
	case lang == "r":
		return LanguageR
	default:
		return LanguageOther
	}
}

func (l Language) String() string {
	return string(l)
}
