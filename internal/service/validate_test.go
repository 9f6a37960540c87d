package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/internal/config"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/wire"
	"github.com/MKhiriev/go-eas-sync/models"
)

func newValidateAdapter(t *testing.T, handler http.HandlerFunc) adapter.ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	account := models.Account{
		Host:     strings.TrimPrefix(srv.URL, "http://"),
		Username: "alice",
		Password: "pw",
	}
	cfg := config.ClientAdapter{ConnectTimeout: time.Second, ReadTimeout: 5 * time.Second, MaxRedirects: 3}

	a, err := adapter.NewHTTPServerAdapter(account, testIdentity(), cfg, "1.0", logger.Nop())
	require.NoError(t, err)
	return a
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"accepted", http.StatusOK, nil},
		{"unauthorized", http.StatusUnauthorized, ErrAuthenticationFailure},
		{"forbidden", http.StatusForbidden, ErrAuthenticationFailure},
		{"server error", http.StatusInternalServerError, ErrIO},
		{"not found", http.StatusNotFound, ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery, gotBody, gotVersion string
			a := newValidateAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.RawQuery
				gotVersion = r.Header.Get(adapter.HeaderProtocolVersion)
				body, _ := io.ReadAll(r.Body)
				gotBody = string(body)
				w.WriteHeader(tt.status)
			})

			err := Validate(context.Background(), a, wire.NewXMLCodec())
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}

			assert.True(t, strings.HasPrefix(gotQuery, "Cmd=FolderSync&User=alice&DeviceId=droid42&DeviceType=Android"))
			assert.Equal(t, "<FolderSync><SyncKey>0</SyncKey></FolderSync>", gotBody)
			assert.Equal(t, "2.5", gotVersion)
		})
	}
}

func TestValidate_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	host := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	a, err := adapter.NewHTTPServerAdapter(
		models.Account{Host: host, Username: "alice"},
		testIdentity(),
		config.ClientAdapter{ConnectTimeout: time.Second, ReadTimeout: time.Second},
		"1.0",
		logger.Nop(),
	)
	require.NoError(t, err)

	err = Validate(context.Background(), a, wire.NewXMLCodec())
	require.ErrorIs(t, err, ErrTransportFailure)
	assert.Equal(t, models.ExitIOError, ExitStatusFor(err))
}
