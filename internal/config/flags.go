package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port number is a positive integer up to 65535")
	errAddressHost   = errors.New("host must be empty, localhost or an IP address")
)

// NetAddress is a validated host:port pair. It implements [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command line into a partial config. Unset flags
// leave their fields zero so mergo keeps values from earlier sources.
//
//	-a                    HTTP address host:port
//	-grpc-address         gRPC health address host:port
//	-d                    database DSN
//	-c, -config           JSON config file
//	-token-sign-key       JWT signing key
//	-token-issuer         JWT issuer
//	-token-duration       token and session cookie lifetime
//	-password-hash-cost   bcrypt cost
//	-request-timeout      per-request timeout
//	-shutdown-timeout     graceful shutdown limit
//	-cookie-secure        Secure session cookie
//	-health-check-interval storage probe interval
//	-log-level            zerolog level
//	-s                    server URL for the terminal client
//	-client-timeout       terminal client request timeout
func ParseFlags() *StructuredConfig {
	cfg := bindFlags(flag.CommandLine)
	flag.Parse()
	return cfg()
}

// bindFlags registers every flag on fs. The returned func assembles the
// config once fs has been parsed.
func bindFlags(fs *flag.FlagSet) func() *StructuredConfig {
	var (
		cfg         StructuredConfig
		httpAddress NetAddress
		grpcAddress NetAddress
	)

	fs.Var(&httpAddress, "a", "HTTP address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN (postgres:// or sqlite://)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")

	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "token lifetime (e.g. 1h, 30m)")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost for new passwords")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "request timeout (e.g. 30s)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")
	fs.BoolVar(&cfg.Server.CookieSecure, "cookie-secure", false, "send the session cookie over HTTPS only")
	fs.DurationVar(&cfg.Workers.HealthCheckInterval, "health-check-interval", 0, "storage health check interval")

	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "server URL for the terminal client")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "client-timeout", 0, "terminal client request timeout")

	return func() *StructuredConfig {
		cfg.Server.HTTPAddress = httpAddress.String()
		cfg.Server.GRPCAddress = grpcAddress.String()
		return &cfg
	}
}

// String returns host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, "localhost" or an IP
// address (IPv6 in brackets).
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errAddressHost
	}

	a.Host = host
	a.Port = port
	return nil
}
