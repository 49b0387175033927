// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// FlagSource returns the configuration layer read from parsed flags.
// It must be called only after the owning flag set has been parsed.
type FlagSource func() *StructuredConfig

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

type commonFlags struct {
	filePath string
	dsn      string
	hashKey  string
	logFile  string
	logLevel string
}

func registerCommonFlags(fs *pflag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.filePath, "config", "c", "", "JSON or TOML config file path")
	fs.StringVarP(&f.dsn, "dsn", "d", "", "Database DSN")
	fs.StringVar(&f.hashKey, "hash-key", "", "Upload integrity hash key")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func (f *commonFlags) apply(cfg *StructuredConfig) {
	cfg.FilePath = f.filePath
	cfg.Storage.DB.DSN = f.dsn
	cfg.App.HashKey = f.hashKey
	cfg.Log.FilePath = f.logFile
	cfg.Log.Level = f.logLevel
}

// RegisterServerFlags registers the cloud endpoint flags on fs.
//
// Flags:
//
//	-a/--address server address in format [host]:[port]
//	--grpc-address grpc server address in format [host]:[port]
//	-d/--dsn database DSN
//	-c/--config config file path
//	--storage-backend postgres or firestore
//	--firestore-collection
//	--firebase-project, --firebase-credentials
//	--auth-provider jwt or firebase
//	--token-sign-key, --token-issuer
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--max-body-bytes request body cap after decompression
//	--hash-key upload integrity hash key
//	--app-version version reported by /api/version/
func RegisterServerFlags(fs *pflag.FlagSet) FlagSource {
	var (
		common                         commonFlags
		serverAddress, grpcAddress     NetAddress
		backend, authProvider          string
		fbProject, fbCreds, fsCollName string
		tokenSignKey, tokenIssuer      string
		requestTimeout                 time.Duration
		maxBodyBytes                   int64
		version                        string
	)

	registerCommonFlags(fs, &common)
	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&backend, "storage-backend", "", "Cloud record backend: postgres or firestore")
	fs.StringVar(&fsCollName, "firestore-collection", "", "Firestore collection name")
	fs.StringVar(&fbProject, "firebase-project", "", "Firebase project id")
	fs.StringVar(&fbCreds, "firebase-credentials", "", "Firebase service account file")
	fs.StringVar(&authProvider, "auth-provider", "", "Token verifier: jwt or firebase")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Request body cap in bytes after decompression")
	fs.StringVar(&version, "app-version", "", "Application version")

	return func() *StructuredConfig {
		cfg := &StructuredConfig{
			App: App{
				TokenSignKey: tokenSignKey,
				TokenIssuer:  tokenIssuer,
				Version:      version,
				AuthProvider: authProvider,
			},
			Storage: Storage{
				Backend:   backend,
				Firestore: Firestore{Collection: fsCollName},
			},
			Firebase: Firebase{
				ProjectID:       fbProject,
				CredentialsFile: fbCreds,
			},
			Server: Server{
				HTTPAddress:    serverAddress.String(),
				GRPCAddress:    grpcAddress.String(),
				RequestTimeout: requestTimeout,
				MaxBodyBytes:   maxBodyBytes,
			},
		}
		common.apply(cfg)
		return cfg
	}
}

// RegisterClientFlags registers the sync client flags on fs. Cobra commands
// pass their persistent flag set.
//
// Flags:
//
//	-s/--server cloud endpoint address
//	-t/--token bearer token
//	-u/--user user id override
//	-d/--dsn local SQLite file
//	-c/--config config file path
//	--timeout outbound request timeout
//	--debounce quiet window before a debounced upload
//	--periodic heartbeat upload interval
//	--flush-on-stop send a pending upload on exit
//	--no-watch disable the local store watcher
func RegisterClientFlags(fs *pflag.FlagSet) FlagSource {
	var (
		common         commonFlags
		serverAddress  string
		token, userID  string
		timeout        time.Duration
		debounce       time.Duration
		periodic       time.Duration
		flushOnStop    bool
		disableWatcher bool
	)

	registerCommonFlags(fs, &common)
	fs.StringVarP(&serverAddress, "server", "s", "", "Cloud endpoint address")
	fs.StringVarP(&token, "token", "t", "", "Bearer token")
	fs.StringVarP(&userID, "user", "u", "", "User id (defaults to the token subject)")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&debounce, "debounce", 0, "Debounce window (e.g., 3s)")
	fs.DurationVar(&periodic, "periodic", 0, "Periodic sync interval (e.g., 5m)")
	fs.BoolVar(&flushOnStop, "flush-on-stop", false, "Flush a pending upload on exit")
	fs.BoolVar(&disableWatcher, "no-watch", false, "Do not watch the local store for changes")

	return func() *StructuredConfig {
		cfg := &StructuredConfig{
			App: App{UserID: userID},
			Adapter: Adapter{
				HTTPAddress:    serverAddress,
				RequestTimeout: timeout,
				Token:          token,
			},
			Workers: Workers{
				DebounceWindow:   debounce,
				PeriodicInterval: periodic,
				FlushOnStop:      flushOnStop,
				DisableWatcher:   disableWatcher,
			},
		}
		common.apply(cfg)
		return cfg
	}
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
// "localhost" or an IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type names the value kind in pflag usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}
