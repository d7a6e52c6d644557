package middlew

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger_Default(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLogger(context.Background()))
}

func TestWithLoggerAndAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(WithLogger(log))
	r.Use(AccessLog)
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		GetLogger(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	out := buf.String()
	assert.Contains(t, out, `"msg":"inside handler"`)
	assert.Contains(t, out, `"trace_id"`)
	assert.Contains(t, out, `"msg":"http request"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"path":"/ping"`)
}
