// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// catalogueRouter mirrors the shape of the real route table without the
// services behind it.
func catalogueRouter() *chi.Mux {
	respond := func(status int, body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(body))
		}
	}

	router := chi.NewRouter()
	router.Get("/api/bundle", respond(http.StatusOK, "bundle"))
	router.Get("/api/species/changes", respond(http.StatusOK, "changes"))
	router.Put("/api/species/{id:[0-9]+}", respond(http.StatusOK, "put"))
	router.Delete("/api/species/{id:[0-9]+}", respond(http.StatusOK, "deleted"))
	router.Post("/api/media", respond(http.StatusCreated, "created"))
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := catalogueRouter()

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/api/bundle", http.StatusOK, "bundle"},
		{http.MethodGet, "/api/species/changes", http.StatusOK, "changes"},
		{http.MethodPut, "/api/species/42", http.StatusOK, "put"},
		{http.MethodDelete, "/api/species/42", http.StatusOK, "deleted"},
		{http.MethodPost, "/api/media", http.StatusCreated, "created"},

		{http.MethodPost, "/api/bundle", http.StatusNotFound, ""},
		{http.MethodDelete, "/api/bundle", http.StatusNotFound, ""},
		{http.MethodPut, "/api/species/changes", http.StatusNotFound, ""},
		{http.MethodGet, "/api/species/42", http.StatusNotFound, ""},
		{http.MethodPatch, "/api/species/42", http.StatusNotFound, ""},
		{http.MethodGet, "/api/media", http.StatusNotFound, ""},
		{http.MethodOptions, "/api/media", http.StatusNotFound, ""},

		{http.MethodGet, "/api/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_Concurrent(t *testing.T) {
	router := catalogueRouter()
	const n = 40
	codes := make(chan int, n)

	for i := 0; i < n; i++ {
		method := http.MethodGet
		if i%2 == 1 {
			method = http.MethodDelete
		}
		go func(method string) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/api/bundle", nil))
			codes <- rr.Code
		}(method)
	}

	counts := map[int]int{}
	for i := 0; i < n; i++ {
		counts[<-codes]++
	}
	assert.Equal(t, n/2, counts[http.StatusOK])
	assert.Equal(t, n/2, counts[http.StatusNotFound])
}
