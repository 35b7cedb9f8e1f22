package site

import (
	"crypto/sha256"
	"encoding/hex"

	"gopkg.in/yaml.v3"
)

// Snapshot returns a stable hash of the configuration. Two configurations
// with the same snapshot render identically. Callers should snapshot values
// produced by Decode so that aliases and whitespace are already canonical.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
