package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-eas-sync/models"
)

// Protocol defaults applied by [GetClientConfig] when a value is not set.
const (
	DefaultDeviceType      = "Android"
	DefaultDeviceIDFile    = "deviceName"
	DefaultAttachmentDir   = "attachments"
	DefaultVersion         = "1.0"
	DefaultDSN             = "eas-sync.db"
	DefaultConnectTimeout  = 10 * time.Second
	DefaultReadTimeout     = 20 * time.Minute
	DefaultPingReadMargin  = 30 * time.Second
	DefaultMaxRedirects    = 10
	DefaultPingHeartbeat   = 900 * time.Second
	DefaultPingWindow      = 30 * time.Minute
	DefaultPingShortSleep  = 10 * time.Second
	DefaultPingLongSleep   = 10 * time.Minute
	DefaultManualSyncRate  = 1.0
	DefaultManualSyncBurst = 4
)

// ClientApp holds process-level settings.
type ClientApp struct {
	DeviceType    string
	DeviceIDFile  string
	AttachmentDir string
	LogFile       string
	Version       string
	ValidateOnly  bool
}

// ClientAccount holds the account the worker synchronizes.
type ClientAccount struct {
	Host          string
	Username      string
	Password      string
	UseSSL        bool
	TrustAllCerts bool
	Lookback      models.Lookback
}

// ClientAdapter holds settings used by the transport layer.
type ClientAdapter struct {
	// ConnectTimeout bounds TCP connect and TLS handshake.
	ConnectTimeout time.Duration
	// ReadTimeout bounds every command except Ping.
	ReadTimeout time.Duration
	// PingReadMargin is added to the heartbeat for Ping.
	PingReadMargin time.Duration
	// MaxRedirects bounds redirect following.
	MaxRedirects int
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path or PostgreSQL URL.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientServer holds the control API settings.
type ClientServer struct {
	HTTPAddress string
}

// ClientWorkers contains Ping loop and scheduler settings.
type ClientWorkers struct {
	PingHeartbeat   time.Duration
	PingWindow      time.Duration
	PingShortSleep  time.Duration
	PingLongSleep   time.Duration
	ManualSyncRate  float64
	ManualSyncBurst int
}

// ClientConfig is the top-level runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Account ClientAccount
	Adapter ClientAdapter
	Storage ClientStorage
	Server  ClientServer
	Workers ClientWorkers
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], fills in defaults and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	lookback, err := models.ParseLookback(cfg.Account.Lookback)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccountConfigs, err)
	}
	if lookback == models.LookbackUnset {
		lookback = models.Lookback1Week
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DeviceType:    withDefault(cfg.App.DeviceType, DefaultDeviceType),
			DeviceIDFile:  withDefault(cfg.App.DeviceIDFile, DefaultDeviceIDFile),
			AttachmentDir: withDefault(cfg.App.AttachmentDir, DefaultAttachmentDir),
			LogFile:       cfg.App.LogFile,
			Version:       withDefault(cfg.App.Version, DefaultVersion),
			ValidateOnly:  cfg.App.ValidateOnly,
		},
		Account: ClientAccount{
			Host:          cfg.Account.Host,
			Username:      cfg.Account.Username,
			Password:      cfg.Account.Password,
			UseSSL:        cfg.Account.UseSSL,
			TrustAllCerts: cfg.Account.TrustAllCerts,
			Lookback:      lookback,
		},
		Adapter: ClientAdapter{
			ConnectTimeout: withDefault(cfg.Adapter.ConnectTimeout, DefaultConnectTimeout),
			ReadTimeout:    withDefault(cfg.Adapter.ReadTimeout, DefaultReadTimeout),
			PingReadMargin: withDefault(cfg.Adapter.PingReadMargin, DefaultPingReadMargin),
			MaxRedirects:   withDefault(cfg.Adapter.MaxRedirects, DefaultMaxRedirects),
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: withDefault(cfg.Storage.DB.DSN, DefaultDSN),
			},
		},
		Server: ClientServer{
			HTTPAddress: cfg.Server.HTTPAddress,
		},
		Workers: ClientWorkers{
			PingHeartbeat:   withDefault(cfg.Workers.PingHeartbeat, DefaultPingHeartbeat),
			PingWindow:      withDefault(cfg.Workers.PingWindow, DefaultPingWindow),
			PingShortSleep:  withDefault(cfg.Workers.PingShortSleep, DefaultPingShortSleep),
			PingLongSleep:   withDefault(cfg.Workers.PingLongSleep, DefaultPingLongSleep),
			ManualSyncRate:  withDefault(cfg.Workers.ManualSyncRate, DefaultManualSyncRate),
			ManualSyncBurst: withDefault(cfg.Workers.ManualSyncBurst, DefaultManualSyncBurst),
		},
	}

	return clientCfg, clientCfg.validate()
}

func withDefault[T comparable](value, def T) T {
	var zero T
	if value == zero {
		return def
	}
	return value
}
