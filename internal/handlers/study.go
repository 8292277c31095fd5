package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"studymate-backend/internal/logging"
	"studymate-backend/internal/middleware"
	"studymate-backend/internal/models"
	"studymate-backend/internal/services"
	"studymate-backend/internal/session"
)

type studyService interface {
	GenerateFacts(ctx context.Context, owner, topic string, lang models.Language) (*models.FactResult, error)
	Summarize(ctx context.Context, text string, lang models.Language) (string, error)
	FactOfTheDay(ctx context.Context, lang models.Language) (string, error)
	CurrentAffairs(ctx context.Context, lang models.Language) ([]string, error)
	ExamInfo(ctx context.Context, examName string, lang models.Language) (*models.ExamInfoResult, error)
}

type textExtractor interface {
	ExtractText(fileName string, data []byte) (string, error)
}

// defaultSummaryName names exports of pasted text that came without a file.
const defaultSummaryName = "text"

type StudyHandler struct {
	study          studyService
	tracker        *session.Tracker
	extractor      textExtractor
	maxUploadBytes int64
}

func NewStudyHandler(study studyService, tracker *session.Tracker, extractor textExtractor, maxUploadBytes int64) *StudyHandler {
	return &StudyHandler{
		study:          study,
		tracker:        tracker,
		extractor:      extractor,
		maxUploadBytes: maxUploadBytes,
	}
}

// run drives one operation through the workspace state machine and writes
// either the response or the classified error.
func (h *StudyHandler) run(w http.ResponseWriter, r *http.Request, op models.Operation, call func(ctx context.Context, lang models.Language) (interface{}, error)) {
	ctx := r.Context()
	clientID := middleware.GetClientID(ctx)
	lang := middleware.GetLanguage(ctx)

	h.tracker.SetLanguage(clientID, lang)
	generation := h.tracker.Begin(ctx, clientID, op)

	resp, err := call(ctx, lang)
	if err != nil {
		h.tracker.Fail(ctx, clientID, op, generation, errorMessage(err))
		handleServiceError(w, r, err)
		return
	}

	h.tracker.Succeed(ctx, clientID, op, generation, resp)
	writeJSON(w, http.StatusOK, resp)
}

// requestError is a rejection of the request itself, before the oracle runs.
type requestError struct {
	status  int
	code    string
	message string
}

// reject records a rejected request as a failed invocation of op, so the
// workspace reflects it like any other failure.
func (h *StudyHandler) reject(w http.ResponseWriter, r *http.Request, op models.Operation, e requestError) {
	ctx := r.Context()
	clientID := middleware.GetClientID(ctx)

	h.tracker.SetLanguage(clientID, middleware.GetLanguage(ctx))
	generation := h.tracker.Begin(ctx, clientID, op)
	h.tracker.Fail(ctx, clientID, op, generation, e.message)
	writeJSON(w, e.status, errorResp(e.code, e.message, r))
}

var errInvalidBody = requestError{http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body"}

func (h *StudyHandler) GenerateFacts(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateFactsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.reject(w, r, models.OperationFacts, errInvalidBody)
		return
	}

	h.run(w, r, models.OperationFacts, func(ctx context.Context, lang models.Language) (interface{}, error) {
		topic := strings.TrimSpace(req.Topic)
		result, err := h.study.GenerateFacts(ctx, middleware.GetClientID(ctx), topic, lang)
		if err != nil {
			return nil, err
		}
		return models.GenerateFactsResponse{
			Topic:         topic,
			Language:      lang,
			Facts:         result.Facts,
			RelatedTopics: result.RelatedTopics,
			Export:        services.ExportFacts(topic, result),
		}, nil
	})
}

// Summarize accepts either a JSON body {text, file_name} or a multipart upload
// in the "file" field.
func (h *StudyHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	var fileName, text string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		name, extracted, rejected := h.readUpload(r)
		if rejected != nil {
			h.reject(w, r, models.OperationSummary, *rejected)
			return
		}
		fileName, text = name, extracted
	} else {
		var req models.SummarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if isTooLarge(err) {
				h.reject(w, r, models.OperationSummary, requestError{http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Request body is too large"})
				return
			}
			h.reject(w, r, models.OperationSummary, errInvalidBody)
			return
		}
		fileName, text = strings.TrimSpace(req.FileName), req.Text
	}
	if fileName == "" {
		fileName = defaultSummaryName
	}

	h.run(w, r, models.OperationSummary, func(ctx context.Context, lang models.Language) (interface{}, error) {
		summary, err := h.study.Summarize(ctx, text, lang)
		if err != nil {
			return nil, err
		}
		return models.SummarizeResponse{
			FileName: fileName,
			Language: lang,
			Summary:  summary,
			Export:   services.ExportSummary(fileName, summary),
		}, nil
	})
}

func (h *StudyHandler) readUpload(r *http.Request) (string, string, *requestError) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		if isTooLarge(err) {
			return "", "", &requestError{http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File is too large"}
		}
		return "", "", &requestError{http.StatusBadRequest, "VALIDATION_ERROR", "Invalid multipart form"}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", "", &requestError{http.StatusBadRequest, "VALIDATION_ERROR", "Missing file"}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", &requestError{http.StatusBadRequest, "VALIDATION_ERROR", "Failed to read file"}
	}

	name := filepath.Base(header.Filename)
	text, err := h.extractor.ExtractText(name, data)
	if err != nil {
		logging.WithContext(r.Context()).WithError(err).Warnf("Failed to extract text from %s", name)
		if errors.Is(err, services.ErrUnsupportedFile) {
			return "", "", &requestError{http.StatusBadRequest, "UNSUPPORTED_FILE", "This file type cannot be summarized"}
		}
		return "", "", &requestError{http.StatusBadRequest, "VALIDATION_ERROR", "Failed to read text from file"}
	}

	return name, text, nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func (h *StudyHandler) FactOfTheDay(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, models.OperationFactOfTheDay, func(ctx context.Context, lang models.Language) (interface{}, error) {
		fact, err := h.study.FactOfTheDay(ctx, lang)
		if err != nil {
			return nil, err
		}
		return models.FactOfTheDayResponse{
			Language: lang,
			Fact:     fact,
			Export:   services.ExportFactOfTheDay(fact),
		}, nil
	})
}

func (h *StudyHandler) CurrentAffairs(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, models.OperationCurrentAffairs, func(ctx context.Context, lang models.Language) (interface{}, error) {
		items, err := h.study.CurrentAffairs(ctx, lang)
		if err != nil {
			return nil, err
		}
		return models.CurrentAffairsResponse{
			Language: lang,
			Items:    items,
			Export:   services.ExportCurrentAffairs(items, lang),
		}, nil
	})
}

func (h *StudyHandler) ExamInfo(w http.ResponseWriter, r *http.Request) {
	var req models.ExamInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.reject(w, r, models.OperationExamInfo, errInvalidBody)
		return
	}

	h.run(w, r, models.OperationExamInfo, func(ctx context.Context, lang models.Language) (interface{}, error) {
		examName := strings.TrimSpace(req.ExamName)
		info, err := h.study.ExamInfo(ctx, examName, lang)
		if err != nil {
			return nil, err
		}
		return models.ExamInfoResponse{
			ExamName: examName,
			Language: lang,
			Info:     *info,
			Export:   services.ExportExamInfo(examName, info, lang),
		}, nil
	})
}
