package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-detection-address detection service address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-redis redis session store address
//	-c/-config json file path with configs
//	-api-url client API base URL
//	-detection-url client detection service base URL
//	-session-file client session persistence file
//	-token-sign-key reset token signing key
//	-token-issuer reset token issuer name
//	-token-duration reset token duration (e.g., "1h", "30m")
//	-session-ttl session time-to-live (e.g., "1h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-status-interval client session status check interval
func ParseFlags() *StructuredConfig {
	var apiAddress, detectionAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var redisAddr string
	var jsonConfigPath string
	var apiBaseURL string
	var detectionBaseURL string
	var sessionFile string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var sessionTTL time.Duration
	var requestTimeout time.Duration
	var statusInterval time.Duration

	flag.Var(&apiAddress, "a", "Net address host:port")
	flag.Var(&detectionAddress, "detection-address", "Detection service address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&redisAddr, "redis", "", "Redis session store address")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&apiBaseURL, "api-url", "", "API base URL for the client")
	flag.StringVar(&detectionBaseURL, "detection-url", "", "Detection service base URL for the client")
	flag.StringVar(&sessionFile, "session-file", "", "Client session persistence file")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Reset token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Reset token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Reset token duration (e.g., 1h, 30m)")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session time-to-live (e.g., 1h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&statusInterval, "status-interval", 0, "Session status check interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Redis: Redis{
				Addr: redisAddr,
			},
			SessionFile: sessionFile,
		},
		Server: Server{
			APIAddress:       apiAddress.String(),
			DetectionAddress: detectionAddress.String(),
			RequestTimeout:   requestTimeout,
			SessionTTL:       sessionTTL,
		},
		Adapter: Adapter{
			APIBaseURL:       apiBaseURL,
			DetectionBaseURL: detectionBaseURL,
			RequestTimeout:   requestTimeout,
		},
		Workers:      Workers{StatusInterval: statusInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
