package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

func commandLineArgs() []string {
	return os.Args[1:]
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s journal server address used by the client
//	-f server JSON document path
//	-d client SQLite DSN
//	-c/-config json file path with configs
//	-log-file client log file
//	-request-timeout server request timeout (e.g. "30s")
//	-adapter-timeout client request timeout (e.g. "5s")
//	-probe-interval connectivity probe interval (e.g. "15s")
//	-sync-interval local data sync interval (e.g. "5m")
//	-version reported application version
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("journal", flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var documentPath string
	var databaseDSN string
	var jsonConfigPath string
	var logFile string
	var requestTimeout time.Duration
	var adapterTimeout time.Duration
	var probeInterval time.Duration
	var syncInterval time.Duration
	var version string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Journal server address")
	fs.StringVar(&documentPath, "f", "", "JSON document path")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 5s)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 15s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync interval (e.g., 5m)")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: version,
			LogFile: logFile,
		},
		Storage: Storage{
			File: File{Path: documentPath},
			DB:   DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			ProbeInterval: probeInterval,
			SyncInterval:  syncInterval,
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
