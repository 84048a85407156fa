package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	katachi "github.com/katachi-dev/katachi"
	"github.com/katachi-dev/katachi/dsl"
	"github.com/katachi-dev/katachi/middleware"
)

func userSchema() katachi.Schema[map[string]any] {
	return dsl.StrictObject(
		dsl.F("name", dsl.String()),
		dsl.F("age", dsl.Number().Optional()),
	).Schema
}

func TestValidateBody_ValidRequest(t *testing.T) {
	var seen map[string]any
	h := middleware.ValidateBody(userSchema(), middleware.Options{},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, ok := middleware.ParsedFromContext[map[string]any](r.Context())
			require.True(t, ok, "parsed body missing from context")
			seen = body
			w.WriteHeader(http.StatusCreated)
		}))

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"ada","age":36}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"name": "ada", "age": float64(36)}, seen)
}

func TestValidateBody_InvalidRequest(t *testing.T) {
	h := middleware.ValidateBody(userSchema(), middleware.Options{},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for invalid bodies")
		}))

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":1,"extra":true}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload struct {
		Message string `json:"message"`
		Issues  []struct {
			Path    string `json:"path"`
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"issues"`
	}
	require.NoError(t, gojson.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, strings.HasPrefix(payload.Message, "Validation failed: "), payload.Message)
	require.Len(t, payload.Issues, 2)
	assert.Equal(t, "/name", payload.Issues[0].Path)
	assert.Equal(t, katachi.CodeInvalidType, payload.Issues[0].Code)
	assert.Equal(t, "/", payload.Issues[1].Path)
	assert.Equal(t, katachi.CodeUnrecognizedKeys, payload.Issues[1].Code)
}

func TestValidateBody_MalformedJSON(t *testing.T) {
	h := middleware.ValidateBody(userSchema(), middleware.Options{},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for malformed bodies")
		}))

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), katachi.CodeParseError)
}

func TestValidateBody_BodyLimit(t *testing.T) {
	h := middleware.ValidateBody(userSchema(), middleware.Options{MaxBodyBytes: 8},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for truncated bodies")
		}))

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"a very long name"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestValidator_ComposesAsMiddleware(t *testing.T) {
	mw := middleware.Validator(userSchema(), middleware.Options{})
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"ada"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
