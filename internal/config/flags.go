package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a partial config. Unknown
// flags are an error.
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var tokenEditorID int64
	var requestTimeout time.Duration
	var redisAddress string
	var bundleThreshold int64
	var adapterAddress string
	var syncInterval time.Duration
	var once bool
	var logFile string

	fs := flag.NewFlagSet("species-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.Int64Var(&tokenEditorID, "editor-id", 0, "Editor id put into minted tokens (token tool only)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&redisAddress, "redis", "", "Redis address for the bundle cache")
	fs.Int64Var(&bundleThreshold, "bundle-threshold", 0, "Changes above which clients must re-fetch the bundle")
	fs.StringVar(&adapterAddress, "server", "", "Sync server address (client only)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Client sync interval (e.g., 1m)")
	fs.BoolVar(&once, "once", false, "Sync once and exit (client only)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			TokenEditorID: tokenEditorID,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				RedisAddress: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			BundleThreshold: bundleThreshold,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			Once:         once,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses "host:port". The host must be "localhost", empty, or an IP.
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && !strings.EqualFold(host, "localhost") {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
