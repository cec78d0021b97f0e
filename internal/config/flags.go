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

// parseFlags parses all configuration flags from args on a dedicated
// flag set, so it can be called more than once per process.
//
// Flags:
//
//	-v vault directory
//	-t temp directory for decrypted views
//	-cleanup-delay view file lifetime (e.g., "30s")
//	-log-dir client log directory
//	-search-limit max records per search
//	-search-debounce search debounce (e.g., "300ms")
//	-search-cache-ttl search cache ttl (e.g., "5m")
//	-d catalog database DSN
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var vaultDir, tempDir, logDir string
	var cleanupDelay time.Duration
	var searchLimit int
	var searchDebounce, searchCacheTTL time.Duration
	var databaseDSN string
	var requestTimeout time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-doc-vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&vaultDir, "v", "", "Vault directory")
	fs.StringVar(&tempDir, "t", "", "Temp directory for decrypted views")
	fs.DurationVar(&cleanupDelay, "cleanup-delay", 0, "View file lifetime (e.g., 30s)")
	fs.StringVar(&logDir, "log-dir", "", "Client log directory")
	fs.IntVar(&searchLimit, "search-limit", 0, "Max records per search")
	fs.DurationVar(&searchDebounce, "search-debounce", 0, "Search debounce (e.g., 300ms)")
	fs.DurationVar(&searchCacheTTL, "search-cache-ttl", 0, "Search cache TTL (e.g., 5m)")
	fs.StringVar(&databaseDSN, "d", "", "Catalog database DSN")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			VaultDir:         vaultDir,
			TempDir:          tempDir,
			ViewCleanupDelay: cleanupDelay,
			LogDir:           logDir,
		},
		Search: Search{
			Limit:    searchLimit,
			Debounce: searchDebounce,
			CacheTTL: searchCacheTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
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
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
