package config

import "time"

const (
	defaultTokenIssuer         = "go-material-keeper"
	defaultTokenDuration       = 24 * time.Hour
	defaultPasswordHashCost    = 10
	defaultLogLevel            = "info"
	defaultDSN                 = "sqlite://materials.db"
	defaultHTTPAddress         = "localhost:8080"
	defaultRequestTimeout      = 30 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
	defaultAdapterAddress      = "localhost:8080"
	defaultAdapterTimeout      = 10 * time.Second
	defaultHealthCheckInterval = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{
			HealthCheckInterval: defaultHealthCheckInterval,
		},
	}
}
