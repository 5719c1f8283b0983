package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
		} `json:"redis,omitempty"`

		SessionFile string `json:"session_file"`
	} `json:"storage,omitempty"`

	Server struct {
		APIAddress       string   `json:"api_address"`
		DetectionAddress string   `json:"detection_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		SessionTTL       Duration `json:"session_ttl"`
	} `json:"server,omitempty"`

	Adapter struct {
		APIBaseURL       string   `json:"api_url"`
		DetectionBaseURL string   `json:"detection_url"`
		RequestTimeout   Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		StatusInterval Duration `json:"status_interval"`
	} `json:"workers,omitempty"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
			},
			SessionFile: jsonCfg.Storage.SessionFile,
		},
		Server: Server{
			APIAddress:       jsonCfg.Server.APIAddress,
			DetectionAddress: jsonCfg.Server.DetectionAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
			SessionTTL:       time.Duration(jsonCfg.Server.SessionTTL),
		},
		Adapter: Adapter{
			APIBaseURL:       jsonCfg.Adapter.APIBaseURL,
			DetectionBaseURL: jsonCfg.Adapter.DetectionBaseURL,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			StatusInterval: time.Duration(jsonCfg.Workers.StatusInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
