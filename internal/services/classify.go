package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Category is the user-facing class of a failed operation.
type Category string

const (
	CategoryAuthConfig         Category = "auth_config"
	CategorySafetyBlocked      Category = "safety_blocked"
	CategoryRecitationBlocked  Category = "recitation_blocked"
	CategoryInvalidRequest     Category = "invalid_request"
	CategoryServiceUnavailable Category = "service_unavailable"
	CategoryMalformedResponse  Category = "malformed_response"
	CategoryValidationFailed   Category = "validation_failed"
	CategoryUnknown            Category = "unknown"
)

// UserError is the only failure shape surfaced to clients. Message is safe to
// display; Err keeps the raw cause for logs.
type UserError struct {
	Category Category
	Message  string
	Op       string
	Err      error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

// NewValidationError reports blank or unusable input caught before the oracle is called.
func NewValidationError(message string) *UserError {
	return &UserError{Category: CategoryValidationFailed, Message: message}
}

type classifierRule struct {
	category Category
	matches  func(err error, msg string) bool
	message  func(op string) string
}

// Evaluated top to bottom; the first match wins.
var classifierRules = []classifierRule{
	{
		category: CategoryAuthConfig,
		matches: func(_ error, msg string) bool {
			return strings.Contains(msg, "api key") || strings.Contains(msg, "api_key")
		},
		message: func(string) string {
			return "API Key is invalid or missing. Please check your configuration."
		},
	},
	{
		category: CategorySafetyBlocked,
		matches: func(_ error, msg string) bool {
			return strings.Contains(msg, "blocked") && strings.Contains(msg, "safety")
		},
		message: func(op string) string {
			return fmt.Sprintf("Your request for %s was blocked due to safety settings. Please try a different topic or wording.", op)
		},
	},
	{
		category: CategoryRecitationBlocked,
		matches: func(_ error, msg string) bool {
			return strings.Contains(msg, "recitation")
		},
		message: func(op string) string {
			return fmt.Sprintf("Your request for %s was blocked to prevent recitation of copyrighted material. Please try a different topic.", op)
		},
	},
	{
		category: CategoryInvalidRequest,
		matches: func(_ error, msg string) bool {
			return strings.Contains(msg, "400")
		},
		message: func(op string) string {
			return fmt.Sprintf("The request for %s was invalid. Please check your input.", op)
		},
	},
	{
		category: CategoryServiceUnavailable,
		matches: func(_ error, msg string) bool {
			return strings.Contains(msg, "500") || strings.Contains(msg, "503")
		},
		message: func(string) string {
			return "The AI service is temporarily unavailable. Please try again later."
		},
	},
	{
		category: CategoryMalformedResponse,
		matches: func(err error, _ string) bool {
			return isParseFailure(err)
		},
		message: func(op string) string {
			return fmt.Sprintf("The AI returned an invalid response format for %s. Please try again.", op)
		},
	},
}

// Classify maps a raw failure of operation op (e.g. "generating facts") to a
// UserError. Errors that are already classified pass through unchanged.
func Classify(err error, op string) *UserError {
	if err == nil {
		return nil
	}

	var ue *UserError
	if errors.As(err, &ue) {
		return ue
	}

	msg := strings.ToLower(err.Error())
	for _, rule := range classifierRules {
		if rule.matches(err, msg) {
			return &UserError{Category: rule.category, Message: rule.message(op), Op: op, Err: err}
		}
	}

	return &UserError{
		Category: CategoryUnknown,
		Message:  fmt.Sprintf("Failed to complete %s. Please check your connection and try again.", op),
		Op:       op,
		Err:      err,
	}
}

func isParseFailure(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, ErrIncompleteResult)
}
