package services

import (
	"fmt"

	"studymate-backend/internal/models"
)

// PromptKind selects one of the fixed instruction templates.
type PromptKind string

const (
	PromptFacts          PromptKind = "facts"
	PromptSummary        PromptKind = "summary"
	PromptFactOfTheDay   PromptKind = "fact_of_the_day"
	PromptCurrentAffairs PromptKind = "current_affairs"
	PromptExamInfo       PromptKind = "exam_info"
)

// PromptParams carries the user-supplied values embedded in a prompt.
type PromptParams struct {
	Topic    string
	Text     string
	ExamName string
}

// BuildPrompt renders the instruction for kind in lang. User values are
// embedded verbatim; file text is bounded by triple quotes only, so a text
// containing `"""` can break out of its delimiter.
func BuildPrompt(kind PromptKind, lang models.Language, p PromptParams) (string, error) {
	l := lang.Instruction()

	switch kind {
	case PromptFacts:
		return fmt.Sprintf(`In %s, for the topic "%s", provide a JSON object with two keys: "facts" (an array of at least 5 interesting facts) and "related_topics" (an array of 3-5 related topics).`, l, p.Topic), nil
	case PromptSummary:
		return fmt.Sprintf(`Summarize the following text in a clear, concise, and easy-to-understand way in %s. Focus on the key points and main ideas. Text: """%s"""`, l, p.Text), nil
	case PromptFactOfTheDay:
		return fmt.Sprintf("Provide one interesting and surprising science or technology fact of the day, in %s. The fact should be concise, easy to understand, and engaging.", l), nil
	case PromptCurrentAffairs:
		return fmt.Sprintf("Generate a list of 5 to 7 of the most important and recent current affairs and general knowledge points for today. Present them as a list of bullet points. The topics should be relevant for competitive exams in India and general global awareness. The response must be in %s.", l), nil
	case PromptExamInfo:
		return fmt.Sprintf(`Provide a detailed breakdown for the exam named "%s" in %s. Respond with a JSON object containing: "description", "apply_start_date", "apply_end_date", "exam_pattern", and "syllabus". For dates, mention if they are tentative or past.`, p.ExamName, l), nil
	}

	return "", fmt.Errorf("unknown prompt kind %q", kind)
}
