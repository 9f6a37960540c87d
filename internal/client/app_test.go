package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-sync/internal/config"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/service"
	"github.com/MKhiriev/go-eas-sync/models"
)

func testConfig(t *testing.T, serverURL string) *config.ClientConfig {
	t.Helper()

	u, err := url.Parse(serverURL)
	require.NoError(t, err)
	dir := t.TempDir()

	return &config.ClientConfig{
		App: config.ClientApp{
			DeviceType:    config.DefaultDeviceType,
			DeviceIDFile:  filepath.Join(dir, "deviceName"),
			AttachmentDir: filepath.Join(dir, "attachments"),
			Version:       config.DefaultVersion,
			ValidateOnly:  true,
		},
		Account: config.ClientAccount{
			Host:     u.Host,
			Username: "alice",
			Password: "secret",
			Lookback: models.Lookback1Week,
		},
		Adapter: config.ClientAdapter{
			ConnectTimeout: 5 * time.Second,
			ReadTimeout:    10 * time.Second,
			PingReadMargin: config.DefaultPingReadMargin,
			MaxRedirects:   config.DefaultMaxRedirects,
		},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(dir, "eas.db")}},
		Workers: config.ClientWorkers{
			PingHeartbeat:   config.DefaultPingHeartbeat,
			PingWindow:      config.DefaultPingWindow,
			PingShortSleep:  config.DefaultPingShortSleep,
			PingLongSleep:   config.DefaultPingLongSleep,
			ManualSyncRate:  config.DefaultManualSyncRate,
			ManualSyncBurst: config.DefaultManualSyncBurst,
		},
	}
}

func TestApp_ValidateOnly(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStatus models.ExitStatus
		wantErr    error
	}{
		{name: "accepted", status: http.StatusOK, wantStatus: models.ExitDone},
		{name: "rejected credentials", status: http.StatusUnauthorized, wantStatus: models.ExitLoginFailure, wantErr: service.ErrAuthenticationFailure},
		{name: "server error", status: http.StatusInternalServerError, wantStatus: models.ExitIOError, wantErr: service.ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCmd, gotUser string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCmd = r.URL.Query().Get("Cmd")
				gotUser, _, _ = r.BasicAuth()
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			ctx := context.Background()
			app, err := NewApp(ctx, testConfig(t, srv.URL), models.NewAppBuildInfo("", "", ""), logger.Nop())
			require.NoError(t, err)
			assert.Nil(t, app.server, "control API is disabled without an address")
			assert.NotZero(t, app.account.ID)

			status, err := app.Run(ctx)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, "FolderSync", gotCmd)
			assert.Equal(t, "alice", gotUser)
		})
	}
}

func TestNewApp_WithControlAPI(t *testing.T) {
	cfg := testConfig(t, "http://mail.example.com")
	cfg.Server.HTTPAddress = "127.0.0.1:0"

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	defer app.storages.Close()

	assert.NotNil(t, app.server)
}

func TestNewApp_BadStorage(t *testing.T) {
	cfg := testConfig(t, "http://mail.example.com")
	cfg.Storage.DB.DSN = "postgres://127.0.0.1:1/eas?connect_timeout=1"

	_, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	assert.Error(t, err)
}

func TestClientVersion(t *testing.T) {
	built := models.NewAppBuildInfo("2.4.0", "", "")
	unbuilt := models.NewAppBuildInfo("", "", "")

	assert.Equal(t, "2.4.0", clientVersion(config.ClientApp{Version: config.DefaultVersion}, built))
	assert.Equal(t, "3.0", clientVersion(config.ClientApp{Version: "3.0"}, built))
	assert.Equal(t, config.DefaultVersion, clientVersion(config.ClientApp{Version: config.DefaultVersion}, unbuilt))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(models.ExitDone))
	assert.Equal(t, 1, ExitCode(models.ExitIOError))
	assert.Equal(t, 2, ExitCode(models.ExitLoginFailure))
	assert.Equal(t, 3, ExitCode(models.ExitException))
}
