package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studymate-backend/internal/history"
	"studymate-backend/internal/i18n"
	"studymate-backend/internal/logging"
	"studymate-backend/internal/models"
)

// Operation names used in classified messages ("Your request for ... was blocked").
const (
	opFacts          = "generating facts"
	opSummary        = "summarizing text"
	opFactOfTheDay   = "getting fact of the day"
	opCurrentAffairs = "generating current affairs"
	opExamInfo       = "generating exam information"
)

// StudyService runs the five study operations. Each makes at most one oracle
// call and returns either a typed result or a *UserError.
type StudyService struct {
	oracle  Oracle
	model   string
	history *history.Service
	strict  bool
}

func NewStudyService(oracle Oracle, model string, hist *history.Service, strict bool) *StudyService {
	return &StudyService{
		oracle:  oracle,
		model:   model,
		history: hist,
		strict:  strict,
	}
}

// GenerateFacts asks for facts about topic and, on success, records the topic
// in owner's history.
func (s *StudyService) GenerateFacts(ctx context.Context, owner, topic string, lang models.Language) (*models.FactResult, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, NewValidationError(i18n.For(lang).ErrorEnterTopic)
	}

	raw, err := s.generate(ctx, opFacts, PromptFacts, lang, PromptParams{Topic: topic},
		&GenerateOptions{ResponseFormat: ResponseFormatJSON, Schema: FactSchema()})
	if err != nil {
		return nil, err
	}

	var result models.FactResult
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &result); err != nil {
		return nil, s.fail(ctx, opFacts, fmt.Errorf("parse fact result: %w", err))
	}
	if s.strict {
		if err := checkFactResult(&result); err != nil {
			return nil, s.fail(ctx, opFacts, err)
		}
	}

	if s.history != nil {
		if _, err := s.history.Record(ctx, owner, topic); err != nil {
			logging.WithContext(ctx).WithError(err).Warn("Failed to record topic in history")
		}
	}

	return &result, nil
}

func (s *StudyService) Summarize(ctx context.Context, text string, lang models.Language) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", NewValidationError(i18n.For(lang).ErrorNoFile)
	}

	return s.generate(ctx, opSummary, PromptSummary, lang, PromptParams{Text: text}, nil)
}

func (s *StudyService) FactOfTheDay(ctx context.Context, lang models.Language) (string, error) {
	return s.generate(ctx, opFactOfTheDay, PromptFactOfTheDay, lang, PromptParams{}, nil)
}

// CurrentAffairs returns the briefing as one item per bullet line.
func (s *StudyService) CurrentAffairs(ctx context.Context, lang models.Language) ([]string, error) {
	raw, err := s.generate(ctx, opCurrentAffairs, PromptCurrentAffairs, lang, PromptParams{}, nil)
	if err != nil {
		return nil, err
	}
	return SplitBulletLines(raw), nil
}

func (s *StudyService) ExamInfo(ctx context.Context, examName string, lang models.Language) (*models.ExamInfoResult, error) {
	if strings.TrimSpace(examName) == "" {
		return nil, NewValidationError(i18n.For(lang).ErrorExamName)
	}

	raw, err := s.generate(ctx, opExamInfo, PromptExamInfo, lang, PromptParams{ExamName: examName},
		&GenerateOptions{ResponseFormat: ResponseFormatJSON, Schema: ExamInfoSchema()})
	if err != nil {
		return nil, err
	}

	var result models.ExamInfoResult
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &result); err != nil {
		return nil, s.fail(ctx, opExamInfo, fmt.Errorf("parse exam info result: %w", err))
	}
	if s.strict {
		if err := checkExamInfoResult(&result); err != nil {
			return nil, s.fail(ctx, opExamInfo, err)
		}
	}

	return &result, nil
}

func (s *StudyService) generate(ctx context.Context, op string, kind PromptKind, lang models.Language, params PromptParams, opts *GenerateOptions) (string, error) {
	if s.oracle == nil {
		return "", s.fail(ctx, op, ErrMissingAPIKey)
	}

	prompt, err := BuildPrompt(kind, lang, params)
	if err != nil {
		return "", s.fail(ctx, op, err)
	}

	text, err := s.oracle.Generate(ctx, s.model, prompt, opts)
	if err != nil {
		return "", s.fail(ctx, op, err)
	}
	if strings.TrimSpace(text) == "" {
		logging.WithContext(ctx).Warnf("Gemini returned empty text while %s", op)
	}
	return text, nil
}

// fail logs the raw cause and returns the classified error.
func (s *StudyService) fail(ctx context.Context, op string, err error) error {
	logging.WithContext(ctx).WithError(err).Errorf("Error %s", op)
	return Classify(err, op)
}
