// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the species-sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the client sync
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/species-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic access to the read side of the
// changelog protocol.
type ServerAdapter interface {
	// CheckChanges asks whether a replica at since is stale.
	CheckChanges(ctx context.Context, since int64) (models.ChangeStatus, error)

	// Incremental fetches the current rows of every entity changed after
	// since, plus tombstones for deleted ones.
	Incremental(ctx context.Context, since int64) (models.IncrementalChanges, error)

	// Bundle fetches a full snapshot of the catalogue.
	Bundle(ctx context.Context) (models.Bundle, error)

	// Changes fetches one page of raw ledger entries after since.
	Changes(ctx context.Context, since int64, page models.Pagination) (models.ChangesPage, error)

	// Health fetches the server's liveness report.
	Health(ctx context.Context) (models.Health, error)
}
