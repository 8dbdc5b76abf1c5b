package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
	"github.com/yanqian/ai-summarizer/internal/infra/config"
	apperrors "github.com/yanqian/ai-summarizer/pkg/errors"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

func TestRouter_SummarizeEndToEnd(t *testing.T) {
	gen := &stubGenerator{text: "- point one\n- point two"}
	server := newRouterUnderTest(t, newService(gen, nil))

	recorder := performRequest(server, http.MethodPost, "/summarize", `{"text":"Long article about X...","summaryType":"bullet","length":"short"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"summary":"- point one\n- point two"}`, recorder.Body.String())

	require.Equal(t, 1, gen.calls)
	require.Equal(t, summarizer.BudgetShort, gen.last.MaxTokens)
	require.True(t, strings.HasPrefix(gen.last.Prompt, "Create 3-4 key bullet points"))
}

func TestRouter_SummarizeEmptyTextSkipsProvider(t *testing.T) {
	gen := &stubGenerator{text: "unused"}
	server := newRouterUnderTest(t, newService(gen, nil))

	recorder := performRequest(server, http.MethodPost, "/summarize", `{"text":""}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	body := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_input", body["code"])
	require.Equal(t, "text cannot be empty", body["error"])
	require.Zero(t, gen.calls)
}

func TestRouter_SummarizeRejectsUnknownLength(t *testing.T) {
	gen := &stubGenerator{text: "unused"}
	server := newRouterUnderTest(t, newService(gen, nil))

	recorder := performRequest(server, http.MethodPost, "/summarize", `{"text":"abc","length":"gigantic"}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Contains(t, decodeErrorBody(t, recorder.Body.Bytes())["error"], "gigantic")
	require.Zero(t, gen.calls)
}

func TestRouter_SummarizeInvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "wrong type", body: `{"text":123}`},
		{name: "truncated", body: `{"text":`},
		{name: "empty body", body: ``},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{}
			server := newRouterUnderTest(t, newService(gen, nil))

			recorder := performRequest(server, http.MethodPost, "/summarize", tt.body)
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			body := decodeErrorBody(t, recorder.Body.Bytes())
			require.Equal(t, "invalid_request", body["code"])
			require.NotEmpty(t, body["error"])
			require.Zero(t, gen.calls)
		})
	}
}

func TestRouter_SummarizeUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("status=401: Incorrect API key provided: sk-secret")}
	server := newRouterUnderTest(t, newService(gen, nil))

	recorder := performRequest(server, http.MethodPost, "/summarize", `{"text":"hello"}`)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	body := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "upstream_failure", body["code"])
	require.Equal(t, "failed to generate summary", body["error"])
	require.NotContains(t, recorder.Body.String(), "sk-secret")
}

func TestRouter_SummarizeRejectsOversizedBody(t *testing.T) {
	gen := &stubGenerator{text: "unused"}
	handler := NewSummaryHandler(newService(gen, nil), newTestLogger())
	handler.maxBodyBytes = 64
	server := NewRouter(newTestConfig(), handler, nil)

	body := `{"text":"` + strings.Repeat("a", 256) + `"}`
	recorder := performRequest(server, http.MethodPost, "/summarize", body)
	require.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
	require.Equal(t, "request_too_large", decodeErrorBody(t, recorder.Body.Bytes())["code"])
	require.Zero(t, gen.calls)
}

func TestAsHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "invalid input",
			err:     apperrors.Wrap(apperrors.CodeInvalidInput, "text cannot be empty", nil),
			status:  http.StatusBadRequest,
			code:    apperrors.CodeInvalidInput,
			message: "text cannot be empty",
		},
		{
			name:    "upstream failure keeps cause out of message",
			err:     apperrors.Wrap(apperrors.CodeUpstreamFailure, "failed to generate summary", errors.New("dial tcp: refused")),
			status:  http.StatusInternalServerError,
			code:    apperrors.CodeUpstreamFailure,
			message: "failed to generate summary",
		},
		{
			name:    "plain error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    apperrors.CodeUpstreamFailure,
			message: "failed to generate summary",
		},
		{
			name:    "already mapped",
			err:     NewHTTPError(http.StatusTeapot, "teapot", "short and stout", nil),
			status:  http.StatusTeapot,
			code:    "teapot",
			message: "short and stout",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := asHTTPError(tt.err)
			require.Equal(t, tt.status, got.Status)
			require.Equal(t, tt.code, got.Code)
			require.Equal(t, tt.message, got.Message)
		})
	}
	require.Nil(t, asHTTPError(nil))
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, newService(&stubGenerator{}, nil))

	req := httptest.NewRequest(http.MethodOptions, "/summarize", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Methods"))
	require.Equal(t, "content-type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestResolveOrigin(t *testing.T) {
	allowed := []string{"https://app.example.com", "https://admin.example.com"}
	require.Equal(t, "*", resolveOrigin("https://x.example.com", nil))
	require.Equal(t, "https://admin.example.com", resolveOrigin("https://ADMIN.example.com", allowed))
	require.Equal(t, "https://app.example.com", resolveOrigin("https://evil.example.com", allowed))
	require.Equal(t, "*", resolveOrigin("https://x.example.com", []string{"*"}))
}

func TestRouter_RequestID(t *testing.T) {
	server := newRouterUnderTest(t, newService(&stubGenerator{text: "ok"}, nil))

	rec := performRequest(server, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRouter_MetricsExposesSummaryCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	server := newRouterWithRegistry(t, newService(&stubGenerator{text: "ok"}, metrics.NewPrometheusRecorder(reg)), reg)

	rec := performRequest(server, http.MethodPost, "/summarize", `{"text":"hello","summaryType":"paragraph","length":"long"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(server, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `summarizer_requests_total{length="long",outcome="success",shape="paragraph"} 1`)
}

func performRequest(server *http.Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc summarizer.Service) *http.Server {
	t.Helper()
	return newRouterWithRegistry(t, svc, nil)
}

func newRouterWithRegistry(t *testing.T, svc summarizer.Service, reg *prometheus.Registry) *http.Server {
	t.Helper()
	handler := NewSummaryHandler(svc, newTestLogger())
	return NewRouter(newTestConfig(), handler, reg)
}

func newTestConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
}

func newService(gen summarizer.Generator, recorder metrics.Recorder) summarizer.Service {
	return summarizer.NewService(summarizer.Config{Model: "test-model", Temperature: 0.5}, gen, nil, recorder, newTestLogger())
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubGenerator struct {
	text string
	err  error

	calls int
	last  summarizer.Generation
}

func (s *stubGenerator) Generate(_ context.Context, gen summarizer.Generation) (summarizer.Completion, error) {
	s.calls++
	s.last = gen
	if s.err != nil {
		return summarizer.Completion{}, s.err
	}
	return summarizer.Completion{Text: s.text}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
