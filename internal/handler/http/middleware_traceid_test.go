package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traceRun прогоняет запрос через withTraceID и возвращает ответ и строку лога,
// записанную обработчиком через логгер из контекста.
func traceRun(t *testing.T, incoming string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(&buf, "test")}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handled")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/species/changes?since_version=3", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	return rr, line
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "client id reused", incoming: "client-7f3a", wantSame: true},
		{name: "uuid reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantSame: true},
		{name: "max length reused", incoming: strings.Repeat("a", maxTraceIDLength), wantSame: true},
		{name: "missing header generates id"},
		{name: "oversized header replaced", incoming: strings.Repeat("x", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, line := traceRun(t, tt.incoming)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, http.StatusOK, rr.Code)
			// тот же id должен попасть в лог обработчика
			assert.Equal(t, got, line["trace_id"])

			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
				return
			}
			assert.NotEqual(t, tt.incoming, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

// Родительский логгер не должен получать trace_id.
func TestWithTraceID_ParentLoggerUntouched(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(&buf, "test")}
	h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/bundle", nil))

	h.logger.Info().Msg("after")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/api/bundle", nil)
	before := req.Context()

	h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, before, req.Context())
}

func TestWithTraceID_UniqueUnderLoad(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	const n = 50
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/bundle", nil))
			mu.Lock()
			seen[rr.Header().Get(traceIDHeader)] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}
