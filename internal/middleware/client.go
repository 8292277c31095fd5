package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"studymate-backend/internal/logging"
	"studymate-backend/internal/models"
)

type contextKey string

const languageKey contextKey = "language"

// MaxClientIDLength bounds client ids from headers and query strings.
const MaxClientIDLength = 128

// ErrClientIDTooLong is returned by NormalizeClientID.
var ErrClientIDTooLong = errors.New("client id is too long")

// NormalizeClientID trims raw and checks its length. An empty result means no
// id was supplied.
func NormalizeClientID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if len(id) > MaxClientIDLength {
		return "", ErrClientIDTooLong
	}
	return id, nil
}

// ClientID identifies the workspace and history owner from X-Client-ID. A new
// id is minted when the header is absent and returned in the same header.
func ClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := NormalizeClientID(r.Header.Get(HeaderClientID))
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_CLIENT_ID", "Client ID is too long", r)
			return
		}
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderClientID, id)

		ctx := logging.WithClientID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientID extracts the client id from request context
func GetClientID(ctx context.Context) string {
	return logging.ClientID(ctx)
}

// Language resolves the request language from the lang query parameter, then
// X-Language, then the primary Accept-Language tag. Unknown values fall back
// to English.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), languageKey, ResolveLanguage(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ResolveLanguage(r *http.Request) models.Language {
	candidates := []string{
		r.URL.Query().Get("lang"),
		r.Header.Get(HeaderLanguage),
		primaryAcceptLanguage(r.Header.Get("Accept-Language")),
	}
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		lang, _ := models.ParseLanguage(c)
		return lang
	}
	return models.LanguageEnglish
}

func primaryAcceptLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(first, ";")
	if strings.TrimSpace(tag) == "*" {
		return ""
	}
	return tag
}

// GetLanguage extracts the resolved language from request context
func GetLanguage(ctx context.Context) models.Language {
	if lang, ok := ctx.Value(languageKey).(models.Language); ok {
		return lang
	}
	return models.LanguageEnglish
}
