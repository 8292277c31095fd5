package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate-backend/internal/logging"
	"studymate-backend/internal/models"
)

func TestRequestIDMintsAndEchoes(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rr.Header().Get(HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rr.Header().Get(HeaderRequestID))
}

func TestCORS(t *testing.T) {
	h := CORS("http://localhost:5173")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/facts/generate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), HeaderClientID)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestClientID(t *testing.T) {
	var seen string
	h := ClientID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetClientID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderClientID, "  device-1 ")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "device-1", seen)
	assert.Equal(t, "device-1", rr.Header().Get(HeaderClientID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rr.Header().Get(HeaderClientID))
}

func TestClientIDTooLong(t *testing.T) {
	h := ClientID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderClientID, strings.Repeat("x", MaxClientIDLength+1))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_CLIENT_ID", body["error"]["code"])
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		header         string
		acceptLanguage string
		want           models.Language
	}{
		{"default", "", "", "", models.LanguageEnglish},
		{"query wins", "hi", "en", "en-US", models.LanguageHindi},
		{"header before accept-language", "", "hi", "en-US", models.LanguageHindi},
		{"accept-language primary tag", "", "", "hi-IN,hi;q=0.9,en;q=0.8", models.LanguageHindi},
		{"accept-language english first", "", "", "en-GB,hi;q=0.5", models.LanguageEnglish},
		{"unknown falls back to english", "fr", "hi", "", models.LanguageEnglish},
		{"wildcard ignored", "", "", "*", models.LanguageEnglish},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target := "/"
			if tc.query != "" {
				target += "?lang=" + tc.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tc.header != "" {
				req.Header.Set(HeaderLanguage, tc.header)
			}
			if tc.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.acceptLanguage)
			}
			assert.Equal(t, tc.want, ResolveLanguage(req))
		})
	}
}

func TestLanguageMiddleware(t *testing.T) {
	var seen models.Language
	h := Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetLanguage(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?lang=hi-IN", nil))
	assert.Equal(t, models.LanguageHindi, seen)
}

func TestNormalizeClientID(t *testing.T) {
	id, err := NormalizeClientID("  device-1 ")
	require.NoError(t, err)
	assert.Equal(t, "device-1", id)

	id, err = NormalizeClientID("   ")
	require.NoError(t, err)
	assert.Empty(t, id)

	_, err = NormalizeClientID(strings.Repeat("x", MaxClientIDLength))
	assert.NoError(t, err)

	_, err = NormalizeClientID(strings.Repeat("x", MaxClientIDLength+1))
	assert.ErrorIs(t, err, ErrClientIDTooLong)
}
