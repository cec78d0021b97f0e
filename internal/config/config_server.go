package config

import "fmt"

// GetServerConfig builds the structured configuration and additionally
// checks the settings only the HTTP server needs.
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateServer()
}
