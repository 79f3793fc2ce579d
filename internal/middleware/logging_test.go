package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SanderGeraedts/InkoopPlanner/internal/logger"
	"github.com/SanderGeraedts/InkoopPlanner/internal/middleware"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	handler := chimw.RequestID(middleware.RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusCreated)
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/orders", nil))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusCreated)
	}
	if logs.Len() != 2 {
		t.Fatalf("log entries: got %d, want 2", logs.Len())
	}

	inside := logs.All()[0]
	if inside.ContextMap()["request_id"] == "" {
		t.Error("handler log entry missing request_id")
	}
	done := logs.All()[1]
	if done.Message != "HTTP request completed" {
		t.Errorf("message: got %q", done.Message)
	}
	if got := done.ContextMap()["status"]; got != int64(http.StatusCreated) {
		t.Errorf("status field: got %v, want %d", got, http.StatusCreated)
	}
}

func TestRequestLogger_ServerErrorLoggedAsError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	handler := middleware.RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if logs.FilterLevelExact(zapcore.ErrorLevel).Len() != 1 {
		t.Errorf("expected one error entry, got %d entries", logs.Len())
	}
}

func TestRecoverer(t *testing.T) {
	handler := middleware.Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}
