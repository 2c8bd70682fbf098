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

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command line.
//
//	-a                 HTTP address host:port
//	-grpc-address      gRPC address host:port
//	-d                 database DSN
//	-c, -config        JSON config file
//	-request-timeout   per-request timeout (e.g. 30s)
//	-history-capacity  scans kept in history
//	-prune-interval    history pruning period (e.g. 1m)
//	-app-version       version reported by /api/version/
//	-log-level         zerolog level
//	-wifi-escaping     escape special characters in generated WiFi payloads
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("qr-keeper-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress, grpcAddress NetAddress
		databaseDSN                string
		jsonConfigPath             string
		requestTimeout             time.Duration
		historyCapacity            int
		pruneInterval              time.Duration
		appVersion                 string
		logLevel                   string
		wifiEscaping               bool
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&historyCapacity, "history-capacity", 0, "Number of scans kept in history")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "History pruning interval (e.g., 1m)")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&wifiEscaping, "wifi-escaping", false, "Escape special characters in WiFi payloads")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:  appVersion,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			History: History{Capacity: historyCapacity},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{PruneInterval: pruneInterval},
		Codec:        Codec{WiFiEscaping: wifiEscaping},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be an IP address or "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, found := strings.Cut(s, ":")
	if !found || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be in range 1-65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
