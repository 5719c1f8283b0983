package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIBaseURL is the base URL of the PerceptronX API server.
	APIBaseURL string
	// DetectionBaseURL is the base URL of the detection/annotation service.
	// Empty disables the annotations screen.
	DetectionBaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client-side persistence settings.
type ClientStorage struct {
	// SessionFile is the SQLite file used to persist a remember-me session
	// across client restarts. Empty keeps the session in memory only.
	SessionFile string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// StatusInterval defines how often the client re-checks session
	// validity against the server.
	StatusInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport endpoints and timeouts.
	Adapter ClientAdapter
	// Storage contains client persistence settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			APIBaseURL:       cfg.Adapter.APIBaseURL,
			DetectionBaseURL: cfg.Adapter.DetectionBaseURL,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionFile: cfg.Storage.SessionFile,
		},
		Workers: ClientWorkers{StatusInterval: cfg.Workers.StatusInterval},
	}

	return clientCfg, clientCfg.validate()
}
