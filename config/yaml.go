package config

import (
	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML machine definition. The document must carry every
// required top-level key; a present-but-empty delta is legal (a machine
// with no rules rejects everything immediately).
func Parse(data []byte) (cfg *Config, err error) {
	var doc map[string]any
	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}

	for _, key := range requiredKeys {
		if _, ok := doc[key]; !ok {
			return nil, ErrKeyMissing(key)
		}
	}

	cfg = &Config{}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
