package services

import (
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"studymate-backend/internal/models"
)

// Schemas below only bias generation. Parsed results are not checked against
// them unless strict result checks are enabled.

func FactSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"facts": {
				Type:        genai.TypeArray,
				Description: "An array of at least 5 interesting and verifiable facts about the topic.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"related_topics": {
				Type:        genai.TypeArray,
				Description: "An array of 3 to 5 related topics for further exploration.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"facts", "related_topics"},
	}
}

func ExamInfoSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"description": {
				Type:        genai.TypeString,
				Description: "A brief, informative description of the exam.",
			},
			"apply_start_date": {
				Type:        genai.TypeString,
				Description: "The start date for applications. State if it's tentative or past.",
			},
			"apply_end_date": {
				Type:        genai.TypeString,
				Description: "The end date for applications. State if it's tentative or past.",
			},
			"exam_pattern": {
				Type:        genai.TypeString,
				Description: "A detailed breakdown of the exam pattern, including stages, subjects, marks, and duration. Use newlines for formatting.",
			},
			"syllabus": {
				Type:        genai.TypeString,
				Description: "A comprehensive overview of the syllabus for all subjects/stages. Use newlines for formatting.",
			},
		},
		Required: []string{"description", "apply_start_date", "apply_end_date", "exam_pattern", "syllabus"},
	}
}

// ErrIncompleteResult marks a well-formed JSON answer that is missing the
// fields a caller needs. Only produced when strict checks are on.
var ErrIncompleteResult = errors.New("incomplete structured result")

func checkFactResult(r *models.FactResult) error {
	if len(r.Facts) == 0 {
		return ErrIncompleteResult
	}
	return nil
}

func checkExamInfoResult(r *models.ExamInfoResult) error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrIncompleteResult
	}
	return nil
}
