package models

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
		ok    bool
	}{
		{"en", LanguageEnglish, true},
		{"hi", LanguageHindi, true},
		{"HI", LanguageHindi, true},
		{"hi-IN", LanguageHindi, true},
		{"en_US", LanguageEnglish, true},
		{"", LanguageEnglish, false},
		{"fr", LanguageEnglish, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseLanguage(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ParseLanguage(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestLanguageInstruction(t *testing.T) {
	if LanguageHindi.Instruction() != "Hindi" {
		t.Errorf("expected Hindi, got %q", LanguageHindi.Instruction())
	}
	if LanguageEnglish.Instruction() != "English" {
		t.Errorf("expected English, got %q", LanguageEnglish.Instruction())
	}
	if Language("xx").Instruction() != "English" {
		t.Errorf("unknown language should prompt in English")
	}
}
