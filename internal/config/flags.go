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

// parseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN (postgres URL or SQLite file)
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-server-url Notes API base URL used by the client
//	-client-timeout client request timeout (e.g., "10s")
//	-log-file client log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var adapterAddress string
	var adapterTimeout time.Duration
	var logFile string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server-url", "", "Notes API base URL (client)")
	fs.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
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
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "notes"
	}
	return os.Args[0]
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
// An empty host listens on all interfaces; any other host must be
// "localhost" or a valid IP address.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
