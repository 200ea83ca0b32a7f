// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds a [StructuredConfig] from environment variables using the
// caarlos0/env library. Fields are mapped via their `env` and `envPrefix`
// tags; unset variables leave zero values, so they never override other
// sources during the merge.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
