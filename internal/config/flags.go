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

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the agent's command-line flags from args (without the
// program name).
//
// Flags:
//
//	-a agent listen address in format [host]:[port]
//	-o origin base URL
//	-d database DSN
//	-c/-config json file path with configs
//	-api-prefix API path prefix
//	-asset-partition static asset partition name
//	-data-partition API data partition name
//	-request-timeout outbound request timeout (e.g., "15s")
//	-sync-retry-attempts deferred sync attempts
//	-backup-interval state backup period (e.g., "1h")
//	-probe-interval connectivity probe period (e.g., "10s")
//	-auto-sync request a sync on every reconnect
//	-no-background-sync drain immediately instead of deferring
//	-log-level log level name
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("sentinel", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var listenAddress NetAddress
	var origin, dsn, jsonConfigPath, apiPrefix string
	var assetPartition, dataPartition, logLevel string
	var requestTimeout, backupInterval, probeInterval time.Duration
	var syncRetryAttempts int
	var autoSync, noBackgroundSync bool

	fs.Var(&listenAddress, "a", "Net address host:port")
	fs.StringVar(&origin, "o", "", "Origin base URL")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&apiPrefix, "api-prefix", "", "API path prefix")
	fs.StringVar(&assetPartition, "asset-partition", "", "Static asset partition name")
	fs.StringVar(&dataPartition, "data-partition", "", "API data partition name")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	fs.IntVar(&syncRetryAttempts, "sync-retry-attempts", 0, "Deferred sync attempts")
	fs.DurationVar(&backupInterval, "backup-interval", 0, "State backup period (e.g., 1h)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe period (e.g., 10s)")
	fs.BoolVar(&autoSync, "auto-sync", false, "Request a sync on every reconnect")
	fs.BoolVar(&noBackgroundSync, "no-background-sync", false, "Drain immediately instead of deferring")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Origin:    origin,
			APIPrefix: apiPrefix,
			LogLevel:  logLevel,
		},
		Cache: Cache{
			AssetPartition: assetPartition,
			DataPartition:  dataPartition,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Server: Server{
			HTTPAddress: listenAddress.String(),
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			DisableBackgroundSync: noBackgroundSync,
			AutoSync:              autoSync,
			SyncRetryAttempts:     syncRetryAttempts,
			BackupInterval:        backupInterval,
			ProbeInterval:         probeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
