// Package i18n holds the display strings of the study assistant per language.
package i18n

import "studymate-backend/internal/models"

type Strings struct {
	AppTitle       string `json:"appTitle"`
	AppDescription string `json:"appDescription"`

	FactOfTheDay      string `json:"factOfTheDay"`
	TopicFactsTab     string `json:"topicFactsTab"`
	FileSummarizerTab string `json:"fileSummarizerTab"`
	CurrentAffairsTab string `json:"currentAffairsTab"`
	ExamInfoTab       string `json:"examInfoTab"`

	FactsHeader          string `json:"factsHeader"`
	RelatedTopicsHeader  string `json:"relatedTopicsHeader"`
	SummaryHeader        string `json:"summaryHeader"`
	CurrentAffairsHeader string `json:"currentAffairsHeader"`
	ExamInfoHeader       string `json:"examInfoHeader"`
	ExamDescription      string `json:"examDescription"`
	ExamDates            string `json:"examDates"`
	ExamApplyStart       string `json:"examApplyStart"`
	ExamApplyEnd         string `json:"examApplyEnd"`
	ExamPattern          string `json:"examPattern"`
	ExamSyllabus         string `json:"examSyllabus"`

	ErrorEnterTopic string `json:"errorEnterTopic"`
	ErrorNoFile     string `json:"errorNoFile"`
	ErrorExamName   string `json:"errorExamName"`

	PredefinedTopics []string `json:"predefinedTopics"`
}

var english = Strings{
	AppTitle:       "AI Study Buddy",
	AppDescription: "Facts, summaries, current affairs and exam details, generated on demand.",

	FactOfTheDay:      "Fact of the Day",
	TopicFactsTab:     "Topic Facts",
	FileSummarizerTab: "File Summarizer",
	CurrentAffairsTab: "Current Affairs",
	ExamInfoTab:       "Exam Info",

	FactsHeader:          "Facts",
	RelatedTopicsHeader:  "Related Topics",
	SummaryHeader:        "Summary",
	CurrentAffairsHeader: "Today's Current Affairs",
	ExamInfoHeader:       "Exam Information",
	ExamDescription:      "Description",
	ExamDates:            "Important Dates",
	ExamApplyStart:       "Application Start",
	ExamApplyEnd:         "Application End",
	ExamPattern:          "Exam Pattern",
	ExamSyllabus:         "Syllabus",

	ErrorEnterTopic: "Please enter a topic.",
	ErrorNoFile:     "Please select a file with some text to summarize.",
	ErrorExamName:   "Please enter an exam name.",

	PredefinedTopics: []string{"Black Holes", "Photosynthesis", "Indian Constitution", "Artificial Intelligence", "The Mughal Empire"},
}

var hindi = Strings{
	AppTitle:       "एआई स्टडी बडी",
	AppDescription: "तथ्य, सारांश, करंट अफेयर्स और परीक्षा की जानकारी, तुरंत तैयार।",

	FactOfTheDay:      "आज का तथ्य",
	TopicFactsTab:     "विषय तथ्य",
	FileSummarizerTab: "फ़ाइल सारांश",
	CurrentAffairsTab: "करंट अफेयर्स",
	ExamInfoTab:       "परीक्षा जानकारी",

	FactsHeader:          "तथ्य",
	RelatedTopicsHeader:  "संबंधित विषय",
	SummaryHeader:        "सारांश",
	CurrentAffairsHeader: "आज के करंट अफेयर्स",
	ExamInfoHeader:       "परीक्षा जानकारी",
	ExamDescription:      "विवरण",
	ExamDates:            "महत्वपूर्ण तिथियाँ",
	ExamApplyStart:       "आवेदन प्रारंभ",
	ExamApplyEnd:         "आवेदन समाप्ति",
	ExamPattern:          "परीक्षा पैटर्न",
	ExamSyllabus:         "पाठ्यक्रम",

	ErrorEnterTopic: "कृपया एक विषय दर्ज करें।",
	ErrorNoFile:     "कृपया सारांश के लिए कुछ पाठ वाली फ़ाइल चुनें।",
	ErrorExamName:   "कृपया परीक्षा का नाम दर्ज करें।",

	PredefinedTopics: []string{"ब्लैक होल", "प्रकाश संश्लेषण", "भारतीय संविधान", "कृत्रिम बुद्धिमत्ता", "मुगल साम्राज्य"},
}

// For returns the strings of lang, falling back to English.
func For(lang models.Language) Strings {
	if lang == models.LanguageHindi {
		return hindi
	}
	return english
}
