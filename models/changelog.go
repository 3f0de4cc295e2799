// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntityType names the record family a ledger entry points at.
type EntityType string

const (
	// EntitySpecies covers every locale variant of a species record; all
	// variants share one species_id.
	EntitySpecies EntityType = "species"
	// EntityMedia covers media metadata rows keyed by media_id.
	EntityMedia EntityType = "media"
)

// Operation is the kind of mutation recorded in the ledger.
type Operation string

const (
	OperationCreate Operation = "CREATE"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

// ChangeEntry is a single immutable row of the version ledger.
//
// ChangeID reflects insertion order; Version is the global monotonic counter
// value assigned when the entry was appended. Both strictly increase together.
type ChangeEntry struct {
	ChangeID   int64      `json:"change_id"`
	EntityType EntityType `json:"entity_type"`
	EntityID   int64      `json:"entity_id"`
	Version    int64      `json:"version"`
	Operation  Operation  `json:"operation"`
	CreatedAt  time.Time  `json:"created_at"`
}

// BaselineVersion is reported as the bundle version when the ledger is empty.
const BaselineVersion int64 = 1
