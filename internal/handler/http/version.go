package http

import (
	"net/http"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health reports 200 with the latest ledger version, or 503 when the ledger
// cannot be read.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	health, err := h.services.AppInfoService.Health(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("server is unhealthy")
		utils.WriteJSON(w, health, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, health, http.StatusOK)
}
