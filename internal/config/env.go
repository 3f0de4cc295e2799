// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the variables named by its env and envPrefix
// tags. Unset variables leave zero values behind so that later sources
// and applyDefaults can fill them.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading env configs: %w", err)
	}

	return nil
}
