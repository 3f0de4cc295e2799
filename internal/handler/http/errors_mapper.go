package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/species-sync/internal/service"
	"github.com/MKhiriev/species-sync/internal/store"
	"github.com/MKhiriev/species-sync/internal/utils"
	"github.com/MKhiriev/species-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrMissingSinceVersion:     http.StatusBadRequest,
	ErrInvalidPathID:           http.StatusBadRequest,
	ErrInvalidJSON:             http.StatusBadRequest,
	utils.ErrInvalidQueryParam: http.StatusBadRequest,

	service.ErrInvalidSinceVersion:     http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	validators.ErrInvalidSpeciesID:     http.StatusBadRequest,
	validators.ErrEmptyScientificName:  http.StatusBadRequest,
	validators.ErrInvalidLeafType:      http.StatusBadRequest,
	validators.ErrInvalidFruitType:     http.StatusBadRequest,
	validators.ErrNoLocaleProvided:     http.StatusBadRequest,
	validators.ErrLocaleIDMismatch:     http.StatusBadRequest,
	validators.ErrInvalidMediaID:       http.StatusBadRequest,
	validators.ErrInvalidDownloadLink:  http.StatusBadRequest,
	validators.ErrInvalidStreamingLink: http.StatusBadRequest,

	store.ErrSpeciesNotFound: http.StatusNotFound,
	store.ErrMediaNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrCounterMissing:       http.StatusInternalServerError,
}

// statusFromError maps err to an HTTP status. A request that ran out of time
// is 504 whatever layer reported it.
func statusFromError(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Client errors carry the
// error text, server errors only the status text.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
