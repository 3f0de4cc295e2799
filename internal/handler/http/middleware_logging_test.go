package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLog returns a request whose context carries a logger writing to
// buf, as withTraceID would set it up.
func requestWithLog(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func accessLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	return line
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		body      string
		wantLevel string
	}{
		{
			name:      "bundle",
			method:    http.MethodGet,
			target:    "/api/bundle",
			status:    http.StatusOK,
			body:      `{"version":1}`,
			wantLevel: "info",
		},
		{
			name:      "query string kept in uri",
			method:    http.MethodGet,
			target:    "/api/species/changes?since_version=4&page=2",
			status:    http.StatusOK,
			body:      `{}`,
			wantLevel: "info",
		},
		{
			name:      "media created",
			method:    http.MethodPost,
			target:    "/api/media",
			status:    http.StatusCreated,
			body:      `{"media":{}}`,
			wantLevel: "info",
		},
		{
			name:      "missing since_version",
			method:    http.MethodGet,
			target:    "/api/species/incremental",
			status:    http.StatusBadRequest,
			body:      "missing since_version",
			wantLevel: "warn",
		},
		{
			name:      "unauthorized",
			method:    http.MethodDelete,
			target:    "/api/species/9",
			status:    http.StatusUnauthorized,
			wantLevel: "warn",
		},
		{
			name:      "store failure",
			method:    http.MethodGet,
			target:    "/api/bundle",
			status:    http.StatusInternalServerError,
			body:      "Internal Server Error",
			wantLevel: "error",
		},
		{
			name:      "database down",
			method:    http.MethodGet,
			target:    "/api/health",
			status:    http.StatusServiceUnavailable,
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, requestWithLog(tt.method, tt.target, &buf))

			assert.Equal(t, tt.status, rr.Code)
			line := accessLine(t, &buf)
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, tt.method, line["method"])
			assert.Equal(t, tt.target, line["uri"])
			assert.EqualValues(t, tt.status, line["status"])
			assert.EqualValues(t, len(tt.body), line["size"])
			assert.Contains(t, line, "duration")
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, requestWithLog(http.MethodGet, "/api/bundle", &buf))

	line := accessLine(t, &buf)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.EqualValues(t, http.StatusOK, line["status"])
	assert.EqualValues(t, 1024, line["size"])
}

func TestWithLogging_PanicPropagates(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLog(http.MethodGet, "/api/bundle", &buf))
	})
}

func TestWithLogging_Concurrent(t *testing.T) {
	handler := withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			handler.ServeHTTP(httptest.NewRecorder(), requestWithLog(http.MethodGet, "/api/health", &buf))
			assert.Contains(t, buf.String(), `"status":200`)
		}()
	}
	wg.Wait()
}
