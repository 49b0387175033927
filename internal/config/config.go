// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported cloud record storage backends.
const (
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
)

// Supported bearer token verifiers.
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, integrity and identity settings.
	App App `envPrefix:"APP_"`

	// Storage holds the persistence settings: the local SQLite file on the
	// client, the cloud record backend on the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the cloud endpoint.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the cloud endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds sync scheduler timings and daemon behaviour.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// Firebase holds the project shared by the Firestore backend and the
	// Firebase token verifier.
	Firebase Firebase `envPrefix:"FIREBASE_"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to verify bearer JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer JWTs.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// HashKey is the HMAC key used for upload integrity checking.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// UserID overrides the user id otherwise read from the token subject.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// AuthProvider selects how bearer tokens are verified: "jwt" (HS256 with
	// TokenSignKey) or "firebase" (Firebase ID tokens).
	// Env: APP_AUTH_PROVIDER
	AuthProvider string `env:"AUTH_PROVIDER"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Backend selects the cloud record store on the server:
	// "postgres" (default) or "firestore".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the relational database connection settings. On the client it
	// points at the local SQLite file, on the server at PostgreSQL.
	DB DB `envPrefix:"DB_"`

	// Firestore holds the Firestore backend settings.
	Firestore Firestore `envPrefix:"FIRESTORE_"`
}

// DB holds connection settings for a relational database.
type DB struct {
	// DSN is the data source name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Firestore holds the settings of the Firestore cloud record backend.
type Firestore struct {
	// Env: STORAGE_FIRESTORE_COLLECTION
	Collection string `env:"COLLECTION"`
}

// Firebase identifies the Firebase project and its service account.
type Firebase struct {
	// Env: FIREBASE_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`
	// CredentialsFile is a service account JSON file. Empty uses the
	// application default credentials.
	// Env: FIREBASE_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// MaxBodyBytes caps a request body after decompression.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Adapter holds the client's outbound connection settings.
type Adapter struct {
	// HTTPAddress is the base address of the cloud endpoint. A missing
	// scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer JWT sent with every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds the sync scheduler settings.
type Workers struct {
	// DebounceWindow is the quiet period after the last local mutation
	// before an upload is sent.
	// Env: WORKERS_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`

	// PeriodicInterval is the heartbeat upload interval once synced.
	// Env: WORKERS_PERIODIC_INTERVAL
	PeriodicInterval time.Duration `env:"PERIODIC_INTERVAL"`

	// FlushOnStop sends a pending debounced upload when the daemon exits.
	// Env: WORKERS_FLUSH_ON_STOP
	FlushOnStop bool `env:"FLUSH_ON_STOP"`

	// DisableWatcher turns off the local store file watcher.
	// Env: WORKERS_DISABLE_WATCHER
	DisableWatcher bool `env:"DISABLE_WATCHER"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the client log file. Empty means "logs" next to the
	// executable.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// DefaultMaxBodyBytes is the default request body cap of the cloud endpoint.
const DefaultMaxBodyBytes = 8 << 20

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{AuthProvider: AuthProviderJWT},
		Storage: Storage{
			Backend:   BackendPostgres,
			Firestore: Firestore{Collection: "cloud_records"},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			DebounceWindow:   3 * time.Second,
			PeriodicInterval: 5 * time.Minute,
		},
		Log: Log{Level: "info"},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration.
//
// flags reads the values of a flag set registered with [RegisterServerFlags]
// after it has been parsed; nil skips the flag layer.
func GetStructuredConfig(flags FlagSource) (*StructuredConfig, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadConfig(flags FlagSource) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
