// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client process.
//
// It brings the local replica up to date once at startup, then keeps it
// current with the background sync worker until the process is signalled.
package client
