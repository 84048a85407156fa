package middleware

import (
	"context"
	"io"
	"net/http"

	gojson "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	katachi "github.com/katachi-dev/katachi"
)

// ctxKeyParsed is a typed context key for storing a parsed body.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyParsed[T any] struct{}

// ContextWithParsed attaches a parsed value to the context.
func ContextWithParsed[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyParsed[T]{}, v)
}

// ParsedFromContext retrieves the parsed value stored by ValidateBody.
func ParsedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyParsed[T]{}).(T)
	return v, ok
}

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "katachi",
	Subsystem: "middleware",
	Name:      "requests_total",
	Help:      "Requests passed through body validation, by outcome.",
}, []string{"outcome"})

// Options configures the validation middleware.
type Options struct {
	// Logger receives warn-level entries for rejected bodies; nil disables
	// logging.
	Logger *zerolog.Logger
	// MaxBodyBytes caps how much of the request body is read; zero means no
	// limit.
	MaxBodyBytes int64
}

// ValidateBody decodes the JSON request body against s and stashes the
// parsed value in the request context for next. Invalid bodies get a 422
// response carrying the aggregate message and the structured issue list.
func ValidateBody[T any](s katachi.Schema[T], opts Options, next http.Handler) http.Handler {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := io.Reader(r.Body)
		if opts.MaxBodyBytes > 0 {
			body = io.LimitReader(r.Body, opts.MaxBodyBytes)
		}
		res := katachi.SafeParseJSONReader(s, body)
		if !res.Success {
			requestsTotal.WithLabelValues("invalid").Inc()
			log.Warn().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("issues", len(res.Issues)).
				Msg("request body failed validation")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = gojson.NewEncoder(w).Encode(ErrorPayload(res.Message, res.Issues))
			return
		}
		requestsTotal.WithLabelValues("valid").Inc()
		next.ServeHTTP(w, r.WithContext(ContextWithParsed(r.Context(), res.Data)))
	})
}

// Validator returns a router-compatible middleware constructor for s
// (chi-style func(http.Handler) http.Handler).
func Validator[T any](s katachi.Schema[T], opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return ValidateBody(s, opts, next)
	}
}

// ErrorPayload shapes a failed validation for JSON responses.
func ErrorPayload(message string, issues katachi.Issues) map[string]any {
	out := make([]map[string]any, 0, len(issues))
	for _, it := range issues {
		out = append(out, map[string]any{
			"path":    it.Path.Pointer(),
			"code":    it.Code,
			"message": it.Message,
		})
	}
	return map[string]any{"message": message, "issues": out}
}
