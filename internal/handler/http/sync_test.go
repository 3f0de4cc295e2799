// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/species-sync/internal/service"
	"github.com/MKhiriev/species-sync/internal/store"
	"github.com/MKhiriev/species-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChanges_StatusMode(t *testing.T) {
	force := true
	tests := []struct {
		name     string
		status   models.ChangeStatus
		wantBody string
	}{
		{
			name:     "up to date omits force_bundle",
			status:   models.ChangeStatus{UpToDate: true, LatestVersion: 5},
			wantBody: `{"up_to_date":true,"latest_version":5,"change_count":0}`,
		},
		{
			name:     "stale past threshold",
			status:   models.ChangeStatus{ForceBundle: &force, LatestVersion: 26, ChangeCount: 21},
			wantBody: `{"up_to_date":false,"force_bundle":true,"latest_version":26,"change_count":21}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.sync.EXPECT().CheckChanges(gomock.Any(), int64(5)).Return(tt.status, nil)

			rec := serve(router, http.MethodGet, "/api/species/changes?since_version=5", "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestChanges_PagedMode(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage models.Pagination
	}{
		{name: "page only", query: "since_version=0&page=2", wantPage: models.Pagination{Page: 2}},
		{name: "per_page only", query: "since_version=0&per_page=10", wantPage: models.Pagination{PerPage: 10}},
		{name: "both", query: "since_version=0&page=3&per_page=50", wantPage: models.Pagination{Page: 3, PerPage: 50}},
		{name: "out of range values are passed through for clamping", query: "since_version=0&page=0&per_page=1000", wantPage: models.Pagination{Page: 0, PerPage: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			page := models.ChangesPage{
				Total:   1,
				Page:    1,
				PerPage: 50,
				Data:    []models.ChangeEntry{{ChangeID: 1, EntityType: models.EntitySpecies, EntityID: 7, Version: 2, Operation: models.OperationCreate}},
			}
			m.sync.EXPECT().Changes(gomock.Any(), int64(0), tt.wantPage).Return(page, nil)

			rec := serve(router, http.MethodGet, "/api/species/changes?"+tt.query, "")

			require.Equal(t, http.StatusOK, rec.Code)
			var got models.ChangesPage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, int64(1), got.Total)
			require.Len(t, got.Data, 1)
			assert.Equal(t, int64(7), got.Data[0].EntityID)
		})
	}
}

func TestSyncRoutes_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		setup  func(m handlerMocks)
	}{
		{name: "changes without since_version", target: "/api/species/changes"},
		{name: "changes with empty since_version", target: "/api/species/changes?since_version="},
		{name: "changes with non numeric since_version", target: "/api/species/changes?since_version=abc"},
		{name: "changes with non numeric page", target: "/api/species/changes?since_version=1&page=x"},
		{name: "changes with non numeric per_page", target: "/api/species/changes?since_version=1&per_page=1.5"},
		{
			name:   "changes with negative since_version",
			target: "/api/species/changes?since_version=-1",
			setup: func(m handlerMocks) {
				m.sync.EXPECT().CheckChanges(gomock.Any(), int64(-1)).
					Return(models.ChangeStatus{}, fmt.Errorf("%w: -1", service.ErrInvalidSinceVersion))
			},
		},
		{name: "incremental without since_version", target: "/api/species/incremental"},
		{name: "incremental with non numeric since_version", target: "/api/species/incremental?since_version=v3"},
		{
			name:   "incremental with negative since_version",
			target: "/api/species/incremental?since_version=-4",
			setup: func(m handlerMocks) {
				m.sync.EXPECT().Incremental(gomock.Any(), int64(-4)).
					Return(models.IncrementalChanges{}, fmt.Errorf("%w: -4", service.ErrInvalidSinceVersion))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			rec := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSyncRoutes_StoreFailuresAre500(t *testing.T) {
	storeErr := fmt.Errorf("%w: %w", store.ErrExecutingQuery, fmt.Errorf("pq: relation changelog is locked"))

	tests := []struct {
		name   string
		target string
		setup  func(m handlerMocks)
	}{
		{
			name:   "status",
			target: "/api/species/changes?since_version=1",
			setup: func(m handlerMocks) {
				m.sync.EXPECT().CheckChanges(gomock.Any(), int64(1)).Return(models.ChangeStatus{}, storeErr)
			},
		},
		{
			name:   "paged",
			target: "/api/species/changes?since_version=1&page=1",
			setup: func(m handlerMocks) {
				m.sync.EXPECT().Changes(gomock.Any(), int64(1), gomock.Any()).Return(models.ChangesPage{}, storeErr)
			},
		},
		{
			name:   "incremental",
			target: "/api/species/incremental?since_version=1",
			setup: func(m handlerMocks) {
				m.sync.EXPECT().Incremental(gomock.Any(), int64(1)).Return(models.IncrementalChanges{}, storeErr)
			},
		},
		{
			name:   "bundle",
			target: "/api/bundle",
			setup: func(m handlerMocks) {
				m.sync.EXPECT().Bundle(gomock.Any()).Return(models.Bundle{}, storeErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			tt.setup(m)

			rec := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			// no partial payload and no driver details
			assert.NotContains(t, rec.Body.String(), "relation changelog")
			assert.NotContains(t, rec.Body.String(), "{")
		})
	}
}

func TestIncremental_OK(t *testing.T) {
	router, m := newTestRouter(t)

	changes := models.IncrementalChanges{
		LatestVersion:     9,
		EntityCollections: models.NewEntityCollections(),
		Deleted:           models.Tombstones{Species: []int64{3}, Media: []int64{}},
	}
	changes.SpeciesEN = []models.Species{{SpeciesID: 1, ScientificName: "Tectona grandis"}}
	m.sync.EXPECT().Incremental(gomock.Any(), int64(4)).Return(changes, nil)

	rec := serve(router, http.MethodGet, "/api/species/incremental?since_version=4", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.JSONEq(t, `9`, string(got["latest_version"]))
	assert.JSONEq(t, `[]`, string(got["species_tet"]))
	assert.JSONEq(t, `[]`, string(got["media"]))
	assert.JSONEq(t, `{"species":[3],"media":[]}`, string(got["deleted"]))
	assert.Contains(t, string(got["species_en"]), "Tectona grandis")
}

func TestBundle_OK(t *testing.T) {
	router, m := newTestRouter(t)

	bundle := models.Bundle{Version: models.BaselineVersion, EntityCollections: models.NewEntityCollections()}
	m.sync.EXPECT().Bundle(gomock.Any()).Return(bundle, nil)

	rec := serve(router, http.MethodGet, "/api/bundle", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":1,"species_en":[],"species_tet":[],"media":[]}`, rec.Body.String())
}

func TestBundle_GzipWhenAccepted(t *testing.T) {
	router, m := newTestRouter(t)
	m.sync.EXPECT().Bundle(gomock.Any()).Return(models.Bundle{Version: 3, EntityCollections: models.NewEntityCollections()}, nil)

	rec := serve(router, http.MethodGet, "/api/bundle", "", "Accept-Encoding", "gzip")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
