package models

// FactResult is the structured bundle returned for a topic.
type FactResult struct {
	Facts         []string `json:"facts"`
	RelatedTopics []string `json:"related_topics"`
}

// ExamInfoResult is the structured bundle returned for an exam.
type ExamInfoResult struct {
	Description    string `json:"description"`
	ApplyStartDate string `json:"apply_start_date"`
	ApplyEndDate   string `json:"apply_end_date"`
	ExamPattern    string `json:"exam_pattern"`
	Syllabus       string `json:"syllabus"`
}

// Export is the plain-text rendering handed to share/download facilities.
type Export struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

type GenerateFactsRequest struct {
	Topic string `json:"topic"`
}

type GenerateFactsResponse struct {
	Topic         string   `json:"topic"`
	Language      Language `json:"language"`
	Facts         []string `json:"facts"`
	RelatedTopics []string `json:"related_topics"`
	Export        Export   `json:"export"`
}

type SummarizeRequest struct {
	Text     string `json:"text"`
	FileName string `json:"file_name"`
}

type SummarizeResponse struct {
	FileName string   `json:"file_name"`
	Language Language `json:"language"`
	Summary  string   `json:"summary"`
	Export   Export   `json:"export"`
}

type FactOfTheDayResponse struct {
	Language Language `json:"language"`
	Fact     string   `json:"fact"`
	Export   Export   `json:"export"`
}

type CurrentAffairsResponse struct {
	Language Language `json:"language"`
	Items    []string `json:"items"`
	Export   Export   `json:"export"`
}

type ExamInfoRequest struct {
	ExamName string `json:"exam_name"`
}

type ExamInfoResponse struct {
	ExamName string         `json:"exam_name"`
	Language Language       `json:"language"`
	Info     ExamInfoResult `json:"info"`
	Export   Export         `json:"export"`
}

type HistoryResponse struct {
	Topics []string `json:"topics"`
}
