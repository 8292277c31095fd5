package models

import "strings"

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// ParseLanguage accepts "en", "hi" and region-tagged forms like "hi-IN".
func ParseLanguage(s string) (Language, bool) {
	tag := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	switch Language(tag) {
	case LanguageEnglish:
		return LanguageEnglish, true
	case LanguageHindi:
		return LanguageHindi, true
	}
	return LanguageEnglish, false
}

// Instruction is the language name embedded in prompts. Anything that is not
// Hindi is prompted in English.
func (l Language) Instruction() string {
	if l == LanguageHindi {
		return "Hindi"
	}
	return "English"
}

func (l Language) String() string {
	if l == "" {
		return string(LanguageEnglish)
	}
	return string(l)
}
