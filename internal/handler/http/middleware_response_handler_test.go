package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		headers    []int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{
			name:       "bundle with implicit status",
			writes:     []string{`{"version":`, `12}`},
			wantStatus: http.StatusOK,
			wantSize:   14,
		},
		{
			name:       "created media",
			headers:    []int{http.StatusCreated},
			writes:     []string{`{"media":{}}`},
			wantStatus: http.StatusCreated,
			wantSize:   12,
		},
		{
			name:       "first status wins",
			headers:    []int{http.StatusNotFound, http.StatusInternalServerError},
			writes:     []string{"species not found"},
			wantStatus: http.StatusNotFound,
			wantSize:   17,
		},
		{
			name:       "status only",
			headers:    []int{http.StatusServiceUnavailable},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "empty write still commits 200",
			writes:     []string{""},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.headers {
				w.WriteHeader(code)
			}
			for _, chunk := range tt.writes {
				n, err := w.Write([]byte(chunk))
				require.NoError(t, err)
				assert.Equal(t, len(chunk), n)
			}

			assert.True(t, w.wroteHeader)
			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_ZeroValue(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Zero(t, w.status)
	assert.Zero(t, w.size)
	assert.False(t, w.wroteHeader)
}

func TestResponseWriter_HeadersAndUnwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Header().Set(traceIDHeader, "abc")
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, "abc", rr.Header().Get(traceIDHeader))
	assert.Same(t, rr, w.Unwrap())
}
