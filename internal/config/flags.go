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
//	-settings path to the dashboard settings JSON document
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-ghl-url GoHighLevel API base URL
//	-ghl-key GoHighLevel API key
//	-ghl-location GoHighLevel location (sub-account) ID
//	-ghl-timeout outbound CRM request timeout (e.g., "15s")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var settingsPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var ghlBaseURL string
	var ghlAPIKey string
	var ghlLocationID string
	var ghlTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&settingsPath, "settings", "", "Dashboard settings JSON path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&ghlBaseURL, "ghl-url", "", "GoHighLevel API base URL")
	flag.StringVar(&ghlAPIKey, "ghl-key", "", "GoHighLevel API key")
	flag.StringVar(&ghlLocationID, "ghl-location", "", "GoHighLevel location ID")
	flag.DurationVar(&ghlTimeout, "ghl-timeout", 0, "GoHighLevel request timeout (e.g., 15s)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Dashboard: Dashboard{
			SettingsPath: settingsPath,
		},
		GoHighLevel: GoHighLevel{
			BaseURL:        ghlBaseURL,
			APIKey:         ghlAPIKey,
			LocationID:     ghlLocationID,
			RequestTimeout: ghlTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// merge falls through to the next configuration source.
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
