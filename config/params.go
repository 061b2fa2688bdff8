// Package config loads the chain parameters a beaconcore process needs at
// startup: validator count, genesis time, and where/how to persist chain
// state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChainConfig holds the parameters spec §4.1/§4.8 leaves to deployment
// configuration rather than hard-coding: how many genesis validators to
// seed, when genesis occurs, and which storage backend and hash function
// to wire up.
type ChainConfig struct {
	ValidatorCount uint64 `yaml:"validator_count"`
	GenesisTime    uint64 `yaml:"genesis_time"`
	StorageBackend string `yaml:"storage_backend"` // "memory" or "pebble"
	StoragePath    string `yaml:"storage_path"`
	Hasher         string `yaml:"hasher"` // "keccak256" is currently the only option
}

// nestedChainConfig mirrors an older config layout some deployments still
// ship, where the chain parameters live under a "chain:" key alongside
// unrelated top-level sections this loader ignores.
type nestedChainConfig struct {
	Chain ChainConfig `yaml:"chain"`
}

// Load reads a YAML chain-parameter file. It accepts both the flat layout
// (ChainConfig fields at the document root) and the nested "chain:" layout,
// trying flat first and falling back to nested when the flat parse leaves
// ValidatorCount unset.
func Load(path string) (*ChainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes chain-parameter YAML bytes; see Load for the accepted
// layouts.
func Parse(data []byte) (*ChainConfig, error) {
	var flat ChainConfig
	if err := yaml.Unmarshal(data, &flat); err == nil && flat.ValidatorCount != 0 {
		applyDefaults(&flat)
		return &flat, nil
	}

	var nested nestedChainConfig
	if err := yaml.Unmarshal(data, &nested); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if nested.Chain.ValidatorCount == 0 {
		return nil, fmt.Errorf("config: validator_count missing or zero")
	}
	applyDefaults(&nested.Chain)
	return &nested.Chain, nil
}

func applyDefaults(c *ChainConfig) {
	if c.StorageBackend == "" {
		c.StorageBackend = "memory"
	}
	if c.Hasher == "" {
		c.Hasher = "keccak256"
	}
}
