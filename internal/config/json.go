package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		VaultDir         string   `json:"vault_dir"`
		TempDir          string   `json:"temp_dir"`
		ViewCleanupDelay Duration `json:"view_cleanup_delay"`
		LogDir           string   `json:"log_dir"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Search struct {
		Limit    int      `json:"limit"`
		Debounce Duration `json:"debounce"`
		CacheTTL Duration `json:"cache_ttl"`
	} `json:"search,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			VaultDir:         jsonCfg.App.VaultDir,
			TempDir:          jsonCfg.App.TempDir,
			ViewCleanupDelay: time.Duration(jsonCfg.App.ViewCleanupDelay),
			LogDir:           jsonCfg.App.LogDir,
			Version:          jsonCfg.App.Version,
		},
		Search: Search{
			Limit:    jsonCfg.Search.Limit,
			Debounce: time.Duration(jsonCfg.Search.Debounce),
			CacheTTL: time.Duration(jsonCfg.Search.CacheTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
