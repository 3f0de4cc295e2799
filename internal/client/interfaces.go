// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client keeps a local replica in step with the catalogue server. Run returns
// after one sync in one-shot mode, otherwise when the process is signalled.
type Client interface {
	Run() error
}
