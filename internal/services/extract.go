package services

import (
	"regexp"
	"strings"
	"unicode"
)

var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ExtractJSON returns the body of the first ``` fenced block in raw (with or
// without a json tag), or raw itself when there is no fence. Both are trimmed.
func ExtractJSON(raw string) string {
	if m := fencedBlockPattern.FindStringSubmatch(raw); m != nil && m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

var bulletPattern = regexp.MustCompile(`^[*-]\s+`)

// SplitBulletLines turns a bulleted free-text answer into its items: one per
// non-blank line, with a leading "* " or "- " marker removed.
func SplitBulletLines(text string) []string {
	items := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		line = strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
