package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/utils"
	"github.com/MKhiriev/species-sync/models"
	"github.com/go-chi/chi/v5"
)

// mediaChange is the response of media writes: the stored row and the ledger
// entry that recorded it.
type mediaChange struct {
	Media  models.Media       `json:"media"`
	Change models.ChangeEntry `json:"change"`
}

func (h *Handler) putSpecies(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	speciesID, err := pathID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putSpecies").Send()
		writeError(w, err)
		return
	}

	var upsert models.SpeciesUpsert
	if err := json.NewDecoder(r.Body).Decode(&upsert); err != nil {
		log.Err(err).Str("func", "*Handler.putSpecies").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	upsert.SpeciesID = speciesID

	entry, err := h.services.CatalogueService.PutSpecies(r.Context(), upsert)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putSpecies").Int64("species_id", speciesID).Msg("error saving species")
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if entry.Operation == models.OperationCreate {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, entry, status)
}

func (h *Handler) deleteSpecies(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	speciesID, err := pathID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteSpecies").Send()
		writeError(w, err)
		return
	}

	entry, err := h.services.CatalogueService.DeleteSpecies(r.Context(), speciesID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteSpecies").Int64("species_id", speciesID).Msg("error deleting species")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) createMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var media models.Media
	if err := json.NewDecoder(r.Body).Decode(&media); err != nil {
		log.Err(err).Str("func", "*Handler.createMedia").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	media.MediaID = 0

	created, entry, err := h.services.CatalogueService.CreateMedia(r.Context(), media)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createMedia").Msg("error creating media")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, mediaChange{Media: created, Change: entry}, http.StatusCreated)
}

func (h *Handler) updateMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	mediaID, err := pathID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateMedia").Send()
		writeError(w, err)
		return
	}

	var media models.Media
	if err := json.NewDecoder(r.Body).Decode(&media); err != nil {
		log.Err(err).Str("func", "*Handler.updateMedia").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	media.MediaID = mediaID

	updated, entry, err := h.services.CatalogueService.UpdateMedia(r.Context(), media)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateMedia").Int64("media_id", mediaID).Msg("error updating media")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, mediaChange{Media: updated, Change: entry}, http.StatusOK)
}

func (h *Handler) deleteMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	mediaID, err := pathID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteMedia").Send()
		writeError(w, err)
		return
	}

	entry, err := h.services.CatalogueService.DeleteMedia(r.Context(), mediaID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteMedia").Int64("media_id", mediaID).Msg("error deleting media")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPathID, raw)
	}
	return id, nil
}
