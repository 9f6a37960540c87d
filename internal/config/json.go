package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// are written as strings ("10s", "20m").
type StructuredJSONConfig struct {
	App struct {
		DeviceType    string `json:"device_type"`
		DeviceIDFile  string `json:"device_id_file"`
		AttachmentDir string `json:"attachment_dir"`
		LogFile       string `json:"log_file"`
		Version       string `json:"version"`
		ValidateOnly  bool   `json:"validate_only"`
	} `json:"app,omitempty"`

	Account struct {
		Host          string `json:"host"`
		Username      string `json:"username"`
		Password      string `json:"password"`
		UseSSL        bool   `json:"ssl"`
		TrustAllCerts bool   `json:"trust_all_certs"`
		Lookback      string `json:"lookback"`
	} `json:"account,omitempty"`

	Adapter struct {
		ConnectTimeout Duration `json:"connect_timeout"`
		ReadTimeout    Duration `json:"read_timeout"`
		PingReadMargin Duration `json:"ping_read_margin"`
		MaxRedirects   int      `json:"max_redirects"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Workers struct {
		PingHeartbeat   Duration `json:"ping_heartbeat"`
		PingWindow      Duration `json:"ping_window"`
		PingShortSleep  Duration `json:"ping_short_sleep"`
		PingLongSleep   Duration `json:"ping_long_sleep"`
		ManualSyncRate  float64  `json:"manual_sync_rate"`
		ManualSyncBurst int      `json:"manual_sync_burst"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DeviceType:    jsonCfg.App.DeviceType,
			DeviceIDFile:  jsonCfg.App.DeviceIDFile,
			AttachmentDir: jsonCfg.App.AttachmentDir,
			LogFile:       jsonCfg.App.LogFile,
			Version:       jsonCfg.App.Version,
			ValidateOnly:  jsonCfg.App.ValidateOnly,
		},
		Account: Account{
			Host:          jsonCfg.Account.Host,
			Username:      jsonCfg.Account.Username,
			Password:      jsonCfg.Account.Password,
			UseSSL:        jsonCfg.Account.UseSSL,
			TrustAllCerts: jsonCfg.Account.TrustAllCerts,
			Lookback:      jsonCfg.Account.Lookback,
		},
		Adapter: Adapter{
			ConnectTimeout: time.Duration(jsonCfg.Adapter.ConnectTimeout),
			ReadTimeout:    time.Duration(jsonCfg.Adapter.ReadTimeout),
			PingReadMargin: time.Duration(jsonCfg.Adapter.PingReadMargin),
			MaxRedirects:   jsonCfg.Adapter.MaxRedirects,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Workers: Workers{
			PingHeartbeat:   time.Duration(jsonCfg.Workers.PingHeartbeat),
			PingWindow:      time.Duration(jsonCfg.Workers.PingWindow),
			PingShortSleep:  time.Duration(jsonCfg.Workers.PingShortSleep),
			PingLongSleep:   time.Duration(jsonCfg.Workers.PingLongSleep),
			ManualSyncRate:  jsonCfg.Workers.ManualSyncRate,
			ManualSyncBurst: jsonCfg.Workers.ManualSyncBurst,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
