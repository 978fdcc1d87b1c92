package alignconfig

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Load reads a strategy YAML file and returns the Config with its raw
// bytes. KnownFields(true) fails fast on typos and unused fields.
func Load(path string) (*Config, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return parse(data)
}

// Default returns the embedded default strategy
func Default() *Config {
	cfg, _, err := parse(defaultYAML)
	if err != nil {
		// The embedded default is validated by tests; a parse failure
		// here is a build defect, not a runtime condition.
		panic("alignconfig: embedded default.yaml invalid: " + err.Error())
	}
	return cfg
}

func parse(data []byte) (*Config, []byte, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, data, err
	}

	return &cfg, data, nil
}

// Hash generates a SHA-256 hash of the Config via canonical JSON.
// Struct (not map) marshalling keeps field order, so the hash is
// reproducible across runs.
func Hash(cfg *Config) (string, error) {
	jsonBytes, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}
