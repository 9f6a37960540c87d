package adapter

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-eas-sync/internal/config"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/utils"
	"github.com/MKhiriev/go-eas-sync/models"
)

const endpointPath = "/Microsoft-Server-ActiveSync"

type httpServerAdapter struct {
	client *utils.HTTPClient

	endpoint    string
	readTimeout time.Duration
	userAgent   string

	username string
	password string
	identity models.SessionIdentity

	// computed once per adapter
	credsOnce     sync.Once
	authHeader    string
	identityQuery string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter]
// for account.
//
// The endpoint scheme follows account.UseSSL. When account.TrustAllCerts is
// set, certificate and host name verification are disabled; this is logged
// as a warning every time an adapter is built.
//
// Returns an [ErrTransport] if the account host does not form a valid URL.
func NewHTTPServerAdapter(
	account models.Account,
	identity models.SessionIdentity,
	adapterCfg config.ClientAdapter,
	version string,
	log *logger.Logger,
) (ServerAdapter, error) {
	endpoint, err := buildEndpoint(account.Host, account.UseSSL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid account host: %s", ErrTransport, err.Error())
	}

	if account.TrustAllCerts {
		log.Warn().
			Str("host", account.Host).
			Msg("certificate verification disabled for this account (trust-all mode)")
	}

	client := utils.NewHTTPClient(utils.TransportOptions{
		ConnectTimeout:     adapterCfg.ConnectTimeout,
		MaxRedirects:       adapterCfg.MaxRedirects,
		InsecureSkipVerify: account.TrustAllCerts,
	})

	return &httpServerAdapter{
		client:      client,
		endpoint:    endpoint,
		readTimeout: adapterCfg.ReadTimeout,
		userAgent:   identity.DeviceType + "/" + version,
		username:    account.Username,
		password:    account.Password,
		identity:    identity,
		logger:      log,
	}, nil
}

func buildEndpoint(host string, useSSL bool) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", errors.New("empty host")
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	u, err := url.Parse(scheme + "://" + host + endpointPath)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", errors.New("host is missing")
	}

	return u.String(), nil
}

func (h *httpServerAdapter) cacheCredentials() {
	h.credsOnce.Do(func() {
		raw := h.username + ":" + h.password
		h.authHeader = "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
		h.identityQuery = "&User=" + url.QueryEscape(h.username) +
			"&DeviceId=" + url.QueryEscape(h.identity.DeviceID) +
			"&DeviceType=" + url.QueryEscape(h.identity.DeviceType)
	})
}

func (h *httpServerAdapter) commandURL(cmd, extra string) string {
	h.cacheCredentials()
	return h.endpoint + "?Cmd=" + cmd + h.identityQuery + extra
}

// Options implements [ServerAdapter].
func (h *httpServerAdapter) Options(ctx context.Context) (*Response, error) {
	h.cacheCredentials()

	req := h.client.R().
		SetHeader("Authorization", h.authHeader).
		SetHeader("User-Agent", h.userAgent).
		SetHeader("Connection", "keep-alive")

	return h.execute(ctx, req, http.MethodOptions, h.endpoint, "OPTIONS", h.readTimeout)
}

// SendCommand implements [ServerAdapter].
func (h *httpServerAdapter) SendCommand(ctx context.Context, cmd Command) (*Response, error) {
	target := h.commandURL(cmd.Name, cmd.ExtraQuery)

	req := h.client.R().
		SetHeader("Authorization", h.authHeader).
		SetHeader("Content-Type", cmd.contentType()).
		SetHeader("User-Agent", h.userAgent).
		SetHeader("Connection", "keep-alive")
	if len(cmd.Body) > 0 {
		req.SetBody(cmd.Body)
	}
	if cmd.ProtocolVersion != "" {
		req.SetHeader(HeaderProtocolVersion, cmd.ProtocolVersion)
	}

	budget := cmd.ReadTimeout
	if budget <= 0 {
		budget = h.readTimeout
	}

	return h.execute(ctx, req, http.MethodPost, target, cmd.Name, budget)
}

// GetAttachment implements [ServerAdapter].
func (h *httpServerAdapter) GetAttachment(ctx context.Context, location string) (*Response, error) {
	target := h.commandURL(CmdGetAttachment, "&AttachmentName="+url.QueryEscape(location))

	req := h.client.R().
		SetHeader("Authorization", h.authHeader).
		SetHeader("User-Agent", h.userAgent)

	return h.execute(ctx, req, http.MethodGet, target, CmdGetAttachment, h.readTimeout)
}

// execute runs req with a read deadline of budget. The deadline stays armed
// until the returned response is closed.
func (h *httpServerAdapter) execute(
	ctx context.Context,
	req *resty.Request,
	method, target, name string,
	budget time.Duration,
) (*Response, error) {
	reqCtx, cancel := ctx, context.CancelFunc(func() {})
	if budget > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, budget)
	}

	started := time.Now()
	resp, err := req.
		SetContext(reqCtx).
		SetDoNotParseResponse(true).
		Execute(method, target)
	if err != nil {
		ctxErr := reqCtx.Err()
		cancel()
		if resp != nil && resp.RawBody() != nil {
			_ = resp.RawBody().Close()
		}
		h.logger.Debug().Err(err).Str("cmd", name).Msg("request failed")
		if ctxErr != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTransport, name, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrTransport, name, err.Error())
	}

	raw := resp.RawResponse
	h.logger.Debug().
		Str("cmd", name).
		Int("status", raw.StatusCode).
		Int64("content_length", raw.ContentLength).
		Dur("elapsed", time.Since(started)).
		Msg("response received")

	return &Response{
		StatusCode:       raw.StatusCode,
		Header:           raw.Header,
		ContentLength:    raw.ContentLength,
		TransferEncoding: raw.TransferEncoding,
		Body:             raw.Body,
		cancel:           cancel,
	}, nil
}
