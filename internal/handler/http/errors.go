// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request decoding errors. All of them map to 400 Bad Request.
var (
	// ErrMissingSinceVersion is returned when a sync route is called without
	// the since_version query parameter.
	ErrMissingSinceVersion = errors.New("since_version query parameter is required")

	// ErrInvalidPathID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
