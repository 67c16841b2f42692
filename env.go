// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envSuffixes mirrors Suffixes with environment bindings.
type envSuffixes struct {
	Request string `env:"PEND_REQUEST_SUFFIX"`
	Reject  string `env:"PEND_REJECT_SUFFIX"`
	Resolve string `env:"PEND_RESOLVE_SUFFIX"`
}

// SuffixesFromEnv loads suffix overrides from PEND_REQUEST_SUFFIX,
// PEND_REJECT_SUFFIX and PEND_RESOLVE_SUFFIX.
// Unset or empty variables keep the defaults.
func SuffixesFromEnv() (Suffixes, error) {
	var cfg envSuffixes
	if err := env.Parse(&cfg); err != nil {
		return DefaultSuffixes, fmt.Errorf("parse env: %w", err)
	}
	return Configure(cfg.Request, cfg.Reject, cfg.Resolve), nil
}
