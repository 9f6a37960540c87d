// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-sync/internal/config"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/models"
)

var testIdentity = models.SessionIdentity{DeviceID: "droid42", DeviceType: "Android"}

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, readTimeout time.Duration) *httpServerAdapter {
	t.Helper()
	account := models.Account{
		Host:     strings.TrimPrefix(serverURL, "http://"),
		Username: "alice@example.com",
		Password: "s3cret",
	}
	cfg := config.ClientAdapter{ConnectTimeout: time.Second, ReadTimeout: readTimeout, MaxRedirects: 3}

	a, err := NewHTTPServerAdapter(account, testIdentity, cfg, "1.0", logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyHost(t *testing.T) {
	_, err := NewHTTPServerAdapter(models.Account{}, testIdentity, config.ClientAdapter{}, "1.0", logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestNewHTTPServerAdapter_MalformedHost(t *testing.T) {
	account := models.Account{Host: "bad host:%%"}
	_, err := NewHTTPServerAdapter(account, testIdentity, config.ClientAdapter{}, "1.0", logger.Nop())

	assert.ErrorIs(t, err, ErrTransport)
}

func TestBuildEndpoint_Scheme(t *testing.T) {
	plain, err := buildEndpoint("mail.example.com", false)
	require.NoError(t, err)
	assert.Equal(t, "http://mail.example.com/Microsoft-Server-ActiveSync", plain)

	secure, err := buildEndpoint("mail.example.com:8443", true)
	require.NoError(t, err)
	assert.Equal(t, "https://mail.example.com:8443/Microsoft-Server-ActiveSync", secure)
}

// ── SendCommand ─────────────────────────────────────────────────────────────

func TestSendCommand_ComposesRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Microsoft-Server-ActiveSync", r.URL.Path)
		assert.Equal(t, "Cmd=FolderSync&User=alice%40example.com&DeviceId=droid42&DeviceType=Android", r.URL.RawQuery)

		assert.Equal(t, basicAuth("alice@example.com", "s3cret"), r.Header.Get("Authorization"))
		assert.Equal(t, "2.5", r.Header.Get("MS-ASProtocolVersion"))
		assert.Equal(t, "text/xml", r.Header.Get("Content-Type"))
		assert.Equal(t, "Android/1.0", r.Header.Get("User-Agent"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "<FolderSync/>", string(body))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	resp, err := a.SendCommand(context.Background(), Command{
		Name:            CmdFolderSync,
		Body:            []byte("<FolderSync/>"),
		ContentType:     "text/xml",
		ProtocolVersion: "2.5",
	})
	require.NoError(t, err)
	defer resp.Close()

	assert.True(t, resp.IsSuccess())
	assert.Equal(t, int64(2), resp.ContentLength)
	assert.False(t, resp.IsChunked())
}

func TestSendCommand_SendMailUsesMessageMimeType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, MimeTypeMessage, r.Header.Get("Content-Type"))
		assert.True(t, strings.HasSuffix(r.URL.RawQuery, "&SaveInSent=T"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	resp, err := a.SendCommand(context.Background(), Command{
		Name:        CmdSendMail,
		ContentType: "text/xml",
		ExtraQuery:  "&SaveInSent=T",
		Body:        []byte("Subject: hi\r\n\r\nbody"),
	})
	require.NoError(t, err)
	require.NoError(t, resp.Close())
}

func TestSendCommand_NonSuccessStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	resp, err := a.SendCommand(context.Background(), Command{Name: CmdSync})
	require.NoError(t, err)
	defer resp.Close()

	assert.True(t, resp.IsAuthFailure())
	assert.ErrorIs(t, StatusError(resp), ErrForbidden)
}

func TestSendCommand_ReadTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 5*time.Second)
	_, err := a.SendCommand(context.Background(), Command{Name: CmdPing, ReadTimeout: 50 * time.Millisecond})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSendCommand_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, time.Second)
	_, err := a.SendCommand(context.Background(), Command{Name: CmdSync})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSendCommand_EmptyBody(t *testing.T) {
	var (
		gotLength int64
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLength = r.ContentLength
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	resp, err := a.SendCommand(context.Background(), Command{Name: CmdSync, ProtocolVersion: "2.5"})
	require.NoError(t, err)
	defer resp.Close()

	assert.True(t, resp.IsSuccess())
	assert.Zero(t, gotLength)
	assert.Empty(t, gotBody)
}

func TestSendCommand_ChunkedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("part-one"))
		w.(http.Flusher).Flush()
		_, _ = w.Write([]byte("part-two"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	resp, err := a.SendCommand(context.Background(), Command{Name: CmdSync})
	require.NoError(t, err)
	defer resp.Close()

	assert.True(t, resp.IsChunked())
	body, err := DecodeBody(resp)
	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestSendCommand_AuthHeaderIsCached(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization")+"|"+r.URL.RawQuery)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	for range 2 {
		resp, err := a.SendCommand(context.Background(), Command{Name: CmdSync})
		require.NoError(t, err)
		require.NoError(t, resp.Close())
	}

	// credentials changed after first use do not leak into later requests
	a.password = "changed"
	resp, err := a.SendCommand(context.Background(), Command{Name: CmdSync})
	require.NoError(t, err)
	require.NoError(t, resp.Close())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 3)
	assert.Equal(t, seen[0], seen[1])
	assert.Equal(t, seen[0], seen[2])
}

// ── Options ─────────────────────────────────────────────────────────────────

func TestOptions_BareEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodOptions, r.Method)
		assert.Equal(t, "/Microsoft-Server-ActiveSync", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, basicAuth("alice@example.com", "s3cret"), r.Header.Get("Authorization"))

		w.Header().Set("MS-ASProtocolVersions", "2.0,2.1,2.5,12.0")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	resp, err := a.Options(context.Background())
	require.NoError(t, err)
	defer resp.Close()

	assert.Equal(t, "2.0,2.1,2.5,12.0", resp.Header.Get(HeaderProtocolVersions))
}

// ── GetAttachment ───────────────────────────────────────────────────────────

func TestGetAttachment_Request(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "GetAttachment", r.URL.Query().Get("Cmd"))
		assert.Equal(t, "5:1:0", r.URL.Query().Get("AttachmentName"))

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("PNGDATA"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, time.Second)
	resp, err := a.GetAttachment(context.Background(), "5:1:0")
	require.NoError(t, err)
	defer resp.Close()

	assert.Equal(t, "image/png", resp.ContentType())
	assert.Equal(t, int64(7), resp.ContentLength)
}

func TestStatusError_Mapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusInternalServerError, ErrHTTPStatus},
		{http.StatusNotFound, ErrHTTPStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.ErrorIs(t, StatusError(&Response{StatusCode: tt.status}), tt.want)
		})
	}

	assert.NoError(t, StatusError(&Response{StatusCode: http.StatusOK}))
}
