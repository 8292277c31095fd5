package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	syntaxErr := json.Unmarshal([]byte("{not json"), &struct{}{})
	require.Error(t, syntaxErr)

	tests := []struct {
		name     string
		err      error
		category Category
		message  string
	}{
		{
			name:     "invalid api key",
			err:      errors.New("googleapi: Error 400: API key not valid. Please pass a valid API key."),
			category: CategoryAuthConfig,
			message:  "API Key is invalid or missing. Please check your configuration.",
		},
		{
			name:     "api key wins over server error",
			err:      errors.New("Error 503: API_KEY quota project missing"),
			category: CategoryAuthConfig,
			message:  "API Key is invalid or missing. Please check your configuration.",
		},
		{
			name:     "missing credential",
			err:      ErrMissingAPIKey,
			category: CategoryAuthConfig,
		},
		{
			name:     "safety block",
			err:      errors.New("blocked: candidate: FinishReasonSafety"),
			category: CategorySafetyBlocked,
			message:  "Your request for generating facts was blocked due to safety settings. Please try a different topic or wording.",
		},
		{
			name:     "recitation block",
			err:      errors.New("blocked: candidate: FinishReasonRecitation"),
			category: CategoryRecitationBlocked,
			message:  "Your request for generating facts was blocked to prevent recitation of copyrighted material. Please try a different topic.",
		},
		{
			name:     "bad request",
			err:      errors.New("googleapi: Error 400: Request contains an invalid argument."),
			category: CategoryInvalidRequest,
			message:  "The request for generating facts was invalid. Please check your input.",
		},
		{
			name:     "overloaded",
			err:      errors.New("Error 503: overloaded"),
			category: CategoryServiceUnavailable,
			message:  "The AI service is temporarily unavailable. Please try again later.",
		},
		{
			name:     "internal error",
			err:      errors.New("googleapi: Error 500: internal"),
			category: CategoryServiceUnavailable,
		},
		{
			name:     "json syntax",
			err:      fmt.Errorf("parse fact result: %w", syntaxErr),
			category: CategoryMalformedResponse,
			message:  "The AI returned an invalid response format for generating facts. Please try again.",
		},
		{
			name:     "incomplete result",
			err:      ErrIncompleteResult,
			category: CategoryMalformedResponse,
		},
		{
			name:     "network failure",
			err:      errors.New("dial tcp: lookup generativelanguage.googleapis.com: no such host"),
			category: CategoryUnknown,
			message:  "Failed to complete generating facts. Please check your connection and try again.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.err, opFacts)
			require.NotNil(t, got)
			assert.Equal(t, tc.category, got.Category)
			if tc.message != "" {
				assert.Equal(t, tc.message, got.Message)
			}
			assert.Equal(t, opFacts, got.Op)
			assert.ErrorIs(t, got, tc.err)
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, Classify(nil, opFacts))
}

func TestClassifyPassesThroughUserError(t *testing.T) {
	validation := NewValidationError("Please enter a topic.")
	wrapped := fmt.Errorf("handler: %w", validation)

	got := Classify(wrapped, opSummary)
	assert.Same(t, validation, got)
	assert.Equal(t, CategoryValidationFailed, got.Category)
}

func TestUserErrorMessageHidesCause(t *testing.T) {
	cause := errors.New("googleapi: Error 503: backend details")
	ue := Classify(cause, opSummary)

	assert.Equal(t, ue.Message, ue.Error())
	assert.NotContains(t, ue.Error(), "backend details")
	assert.ErrorIs(t, ue, cause)
}
