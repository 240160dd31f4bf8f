/*
 * Config - CLI configuration from the environment.
 *
 * Copyright 2026 The hetzner-dns-api authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package cli

import (
	"github.com/codingconcepts/env"
)

// Config contains the CLI configuration.
type Config struct {
	// DNS API key
	APIKey string `env:"HETZNER_API_KEY" required:"true"`
	// Alternative API endpoint, mainly for testing
	APIURL string `env:"HETZNER_API_URL" default:""`
	// Enable debugging logs
	Debug bool `env:"HETZNER_DEBUG" default:"false"`
}

// NewConfig creates a new configuration object.
func NewConfig() (*Config, error) {
	cfg := &Config{}

	// Populate with values from environment.
	if err := env.Set(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
