// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed]. A known path requested with an unsupported
// method answers 404 Not Found instead of chi's 405, so the route set is not
// advertised to callers.
//
// Paths are matched through [chi.Mux.Match], so parameterised routes such as
// /api/species/{id} are covered as well. When the router does match the
// method and path the request is served normally.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
