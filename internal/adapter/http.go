package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/species-sync/internal/config"
	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/utils"
	"github.com/MKhiriev/species-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CheckChanges implements [ServerAdapter] via
// GET /api/species/changes?since_version=V.
func (h *httpServerAdapter) CheckChanges(ctx context.Context, since int64) (models.ChangeStatus, error) {
	var status models.ChangeStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("since_version", strconv.FormatInt(since, 10)).
		SetResult(&status).
		Get("/api/species/changes")
	if err != nil {
		return models.ChangeStatus{}, fmt.Errorf("check changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangeStatus{}, err
	}

	return status, nil
}

// Incremental implements [ServerAdapter] via
// GET /api/species/incremental?since_version=V.
func (h *httpServerAdapter) Incremental(ctx context.Context, since int64) (models.IncrementalChanges, error) {
	var changes models.IncrementalChanges

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("since_version", strconv.FormatInt(since, 10)).
		SetResult(&changes).
		Get("/api/species/incremental")
	if err != nil {
		return models.IncrementalChanges{}, fmt.Errorf("incremental request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IncrementalChanges{}, err
	}

	return changes, nil
}

// Bundle implements [ServerAdapter] via GET /api/bundle.
func (h *httpServerAdapter) Bundle(ctx context.Context) (models.Bundle, error) {
	var bundle models.Bundle

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&bundle).
		Get("/api/bundle")
	if err != nil {
		return models.Bundle{}, fmt.Errorf("bundle request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bundle{}, err
	}

	return bundle, nil
}

// Changes implements [ServerAdapter] via
// GET /api/species/changes?since_version=V&page=P&per_page=N. Zero page
// fields are sent as is and clamped by the server.
func (h *httpServerAdapter) Changes(ctx context.Context, since int64, page models.Pagination) (models.ChangesPage, error) {
	var result models.ChangesPage

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"since_version": strconv.FormatInt(since, 10),
			"page":          strconv.Itoa(page.Page),
			"per_page":      strconv.Itoa(page.PerPage),
		}).
		SetResult(&result).
		Get("/api/species/changes")
	if err != nil {
		return models.ChangesPage{}, fmt.Errorf("changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangesPage{}, err
	}

	return result, nil
}

// Health implements [ServerAdapter] via GET /api/health.
func (h *httpServerAdapter) Health(ctx context.Context) (models.Health, error) {
	var health models.Health

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/health")
	if err != nil {
		return models.Health{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Health{}, err
	}

	return health, nil
}
