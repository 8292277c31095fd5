package services

import (
	"fmt"
	"regexp"
	"strings"

	"studymate-backend/internal/i18n"
	"studymate-backend/internal/models"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

func fileSlug(s string) string {
	return whitespaceRun.ReplaceAllString(s, "_")
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func ExportFacts(topic string, r *models.FactResult) models.Export {
	if r == nil {
		return models.Export{}
	}
	text := fmt.Sprintf("Facts about \"%s\":\n\n%s\n\nRelated Topics:\n%s",
		topic, bulletList(r.Facts), bulletList(r.RelatedTopics))
	return models.Export{Text: text, Filename: fileSlug(topic) + "_facts.txt"}
}

func ExportSummary(fileName, summary string) models.Export {
	return models.Export{Text: summary, Filename: "summary_" + fileName + ".txt"}
}

func ExportFactOfTheDay(fact string) models.Export {
	return models.Export{Text: fact, Filename: "fact_of_the_day.txt"}
}

func ExportCurrentAffairs(items []string, lang models.Language) models.Export {
	if len(items) == 0 {
		return models.Export{}
	}
	T := i18n.For(lang)
	return models.Export{
		Text:     T.CurrentAffairsHeader + "\n\n" + bulletList(items),
		Filename: "current_affairs_briefing.txt",
	}
}

func ExportExamInfo(examName string, r *models.ExamInfoResult, lang models.Language) models.Export {
	if r == nil {
		return models.Export{}
	}
	T := i18n.For(lang)

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", T.ExamInfoHeader, examName)
	b.WriteString("---------------------------------\n\n")
	fmt.Fprintf(&b, "**%s:**\n%s\n\n", T.ExamDescription, r.Description)
	fmt.Fprintf(&b, "**%s:**\n- %s: %s\n- %s: %s\n\n", T.ExamDates, T.ExamApplyStart, r.ApplyStartDate, T.ExamApplyEnd, r.ApplyEndDate)
	fmt.Fprintf(&b, "**%s:**\n%s\n\n", T.ExamPattern, r.ExamPattern)
	fmt.Fprintf(&b, "**%s:**\n%s", T.ExamSyllabus, r.Syllabus)

	return models.Export{
		Text:     strings.TrimSpace(b.String()),
		Filename: fileSlug(examName) + "_info.txt",
	}
}
