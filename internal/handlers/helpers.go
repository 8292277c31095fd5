package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"studymate-backend/internal/middleware"
	"studymate-backend/internal/models"
	"studymate-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get(middleware.HeaderRequestID),
		},
	}
}

var categoryStatus = map[services.Category]int{
	services.CategoryValidationFailed:   http.StatusBadRequest,
	services.CategoryInvalidRequest:     http.StatusBadRequest,
	services.CategorySafetyBlocked:      http.StatusUnprocessableEntity,
	services.CategoryRecitationBlocked:  http.StatusUnprocessableEntity,
	services.CategoryAuthConfig:         http.StatusInternalServerError,
	services.CategoryMalformedResponse:  http.StatusBadGateway,
	services.CategoryUnknown:            http.StatusBadGateway,
	services.CategoryServiceUnavailable: http.StatusServiceUnavailable,
}

func errorCode(c services.Category) string {
	if c == services.CategoryValidationFailed {
		return "VALIDATION_ERROR"
	}
	return strings.ToUpper(string(c))
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ue *services.UserError
	switch {
	case errors.As(err, &ue):
		status, ok := categoryStatus[ue.Category]
		if !ok {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, errorResp(errorCode(ue.Category), ue.Message, r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}

// errorMessage is the text shown in the workspace for a failed operation.
func errorMessage(err error) string {
	var ue *services.UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	return "An unexpected error occurred"
}
