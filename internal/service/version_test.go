package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/models"
)

func TestVersionPolicies(t *testing.T) {
	tests := []struct {
		name       string
		advertised []string
		pinned     string
		newest     string
	}{
		{"only 2.5", []string{"2.5"}, "2.5", "2.5"},
		{"12.0 advertised", []string{"2.0", "2.5", "12.0"}, "2.5", "12.0"},
		{"unknown versions", []string{"14.1"}, "2.5", "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pinned, PinnedVersionPolicy(tt.advertised))
			assert.Equal(t, tt.newest, PreferNewestVersionPolicy(tt.advertised))
		})
	}
}

func TestParseVersions(t *testing.T) {
	assert.Equal(t, []string{"2.0", "2.5", "12.0"}, parseVersions("2.0, 2.5,12.0"))
	assert.Empty(t, parseVersions(""))
	assert.Empty(t, parseVersions(" , "))
}

func optionsResponse(status int, versions string) *adapter.Response {
	resp := response(status, "")
	if versions != "" {
		resp.Header.Set(adapter.HeaderProtocolVersions, versions)
	}
	return resp
}

func TestNegotiateVersion_PinnedEvenWhenNewerAdvertised(t *testing.T) {
	d := newTestDeps(t)
	sess := newMainSession(testAccount())
	ctx := context.Background()

	d.adapter.EXPECT().Options(ctx).Return(optionsResponse(http.StatusOK, "2.0,2.1,2.5,12.0"), nil)

	require.NoError(t, negotiateVersion(ctx, sess, d.adapter, PinnedVersionPolicy))
	assert.Equal(t, "2.5", sess.ProtocolVersion())
}

func TestNegotiateVersion_PreferNewest(t *testing.T) {
	d := newTestDeps(t)
	sess := newMainSession(testAccount())
	ctx := context.Background()

	d.adapter.EXPECT().Options(ctx).Return(optionsResponse(http.StatusOK, "2.5,12.0"), nil)

	require.NoError(t, negotiateVersion(ctx, sess, d.adapter, PreferNewestVersionPolicy))
	assert.Equal(t, "12.0", sess.ProtocolVersion())
}

func TestNegotiateVersion_Failures(t *testing.T) {
	tests := []struct {
		name       string
		resp       *adapter.Response
		respErr    error
		wantErr    error
		wantStatus models.ExitStatus
	}{
		{
			name:       "missing header",
			resp:       optionsResponse(http.StatusOK, ""),
			wantErr:    ErrProtocolViolation,
			wantStatus: models.ExitDone,
		},
		{
			name:       "unauthorized",
			resp:       optionsResponse(http.StatusUnauthorized, ""),
			wantErr:    ErrAuthenticationFailure,
			wantStatus: models.ExitLoginFailure,
		},
		{
			name:       "server error",
			resp:       optionsResponse(http.StatusInternalServerError, "2.5"),
			wantErr:    ErrTransportFailure,
			wantStatus: models.ExitDone,
		},
		{
			name:       "transport error",
			respErr:    errors.New("connection refused"),
			wantErr:    ErrTransportFailure,
			wantStatus: models.ExitDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			sess := newMainSession(testAccount())
			ctx := context.Background()

			d.adapter.EXPECT().Options(ctx).Return(tt.resp, tt.respErr)

			err := negotiateVersion(ctx, sess, d.adapter, PinnedVersionPolicy)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrIO)
			assert.Equal(t, tt.wantStatus, sess.ExitStatus())
			assert.Equal(t, PinnedProtocolVersion, sess.ProtocolVersion())
		})
	}
}
