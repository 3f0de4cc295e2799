// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/utils"
	"github.com/MKhiriev/species-sync/models"
)

// changes answers GET /api/species/changes. Without page or per_page it is the
// staleness check; with either of them it returns one page of ledger entries.
func (h *Handler) changes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	since, err := sinceVersion(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.changes").Msg("bad since_version")
		writeError(w, err)
		return
	}

	page, pagePresent, err := utils.QueryInt(r, "page")
	if err != nil {
		log.Err(err).Str("func", "*Handler.changes").Msg("bad page")
		writeError(w, err)
		return
	}
	perPage, perPagePresent, err := utils.QueryInt(r, "per_page")
	if err != nil {
		log.Err(err).Str("func", "*Handler.changes").Msg("bad per_page")
		writeError(w, err)
		return
	}

	if pagePresent || perPagePresent {
		changesPage, err := h.services.SyncService.Changes(ctx, since, models.Pagination{Page: page, PerPage: perPage})
		if err != nil {
			log.Err(err).Str("func", "*Handler.changes").Msg("error listing changes")
			writeError(w, err)
			return
		}
		utils.WriteJSON(w, changesPage, http.StatusOK)
		return
	}

	status, err := h.services.SyncService.CheckChanges(ctx, since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.changes").Msg("error checking changes")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) incremental(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	since, err := sinceVersion(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.incremental").Msg("bad since_version")
		writeError(w, err)
		return
	}

	changes, err := h.services.SyncService.Incremental(r.Context(), since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.incremental").Msg("error resolving incremental changes")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, changes, http.StatusOK)
}

func (h *Handler) bundle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bundle, err := h.services.SyncService.Bundle(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.bundle").Msg("error assembling bundle")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, bundle, http.StatusOK)
}

// sinceVersion reads the mandatory since_version parameter. The sign is
// checked by the service.
func sinceVersion(r *http.Request) (int64, error) {
	since, present, err := utils.QueryInt64(r, "since_version")
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, ErrMissingSinceVersion
	}
	return since, nil
}
