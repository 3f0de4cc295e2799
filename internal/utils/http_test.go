package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	type health struct {
		Status        string `json:"status"`
		LatestVersion int64  `json:"latest_version"`
	}

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "health", data: health{Status: "ok", LatestVersion: 9}, status: http.StatusOK, wantBody: `{"status":"ok","latest_version":9}`},
		{name: "created", data: map[string]int64{"version": 10}, status: http.StatusCreated, wantBody: `{"version":10}`},
		{name: "unavailable", data: health{Status: "unavailable"}, status: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable","latest_version":0}`},
		{name: "empty list", data: []int64{}, status: http.StatusOK, wantBody: `[]`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != len(tt.wantBody) {
				t.Errorf("expected %d bytes written, got %d", len(tt.wantBody), n)
			}
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %q", ct)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]any{"bad": make(chan int)}, http.StatusOK)

	if err == nil {
		t.Fatal("expected an error")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if w.Header().Get("Content-Type") == "application/json" {
		t.Error("error response must not claim JSON")
	}
}

func TestQueryInt64(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantValue   int64
		wantPresent bool
		wantErr     bool
	}{
		{name: "absent", url: "/x"},
		{name: "empty", url: "/x?since_version="},
		{name: "zero", url: "/x?since_version=0", wantPresent: true},
		{name: "positive", url: "/x?since_version=41", wantValue: 41, wantPresent: true},
		{name: "negative parses", url: "/x?since_version=-3", wantValue: -3, wantPresent: true},
		{name: "not a number", url: "/x?since_version=abc", wantPresent: true, wantErr: true},
		{name: "float", url: "/x?since_version=1.5", wantPresent: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)

			value, present, err := QueryInt64(r, "since_version")

			if present != tt.wantPresent {
				t.Errorf("expected present=%v, got %v", tt.wantPresent, present)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidQueryParam) {
					t.Errorf("expected ErrInvalidQueryParam, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if value != tt.wantValue {
				t.Errorf("expected %d, got %d", tt.wantValue, value)
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?page=2&per_page=x", nil)

	page, present, err := QueryInt(r, "page")
	if err != nil || !present || page != 2 {
		t.Errorf("expected page=2 present, got %d %v %v", page, present, err)
	}

	if _, _, err := QueryInt(r, "per_page"); !errors.Is(err, ErrInvalidQueryParam) {
		t.Errorf("expected ErrInvalidQueryParam, got %v", err)
	}
}
