package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/models"
)

// Protocol versions known to the engine.
const (
	PinnedProtocolVersion    = "2.5"
	PreferredProtocolVersion = "12.0"
)

// VersionPolicy picks the protocol version from the versions a server
// advertises.
type VersionPolicy func(advertised []string) string

// PinnedVersionPolicy always selects 2.5. The 12.0 command set is not
// implemented yet, so even a server advertising 12.0 is spoken to in 2.5.
func PinnedVersionPolicy(advertised []string) string {
	return PinnedProtocolVersion
}

// PreferNewestVersionPolicy selects 12.0 when advertised and 2.5 otherwise.
func PreferNewestVersionPolicy(advertised []string) string {
	for _, v := range advertised {
		if v == PreferredProtocolVersion {
			return PreferredProtocolVersion
		}
	}
	return PinnedProtocolVersion
}

// parseVersions splits an MS-ASProtocolVersions header value.
func parseVersions(header string) []string {
	var versions []string
	for _, v := range strings.Split(header, ",") {
		if v = strings.TrimSpace(v); v != "" {
			versions = append(versions, v)
		}
	}
	return versions
}

// negotiateVersion sends OPTIONS and stores the selected version on sess.
func negotiateVersion(
	ctx context.Context,
	sess *Session,
	serverAdapter adapter.ServerAdapter,
	policy VersionPolicy,
) error {
	sess.setState(StateNegotiatingVersion)

	resp, err := serverAdapter.Options(ctx)
	if err != nil {
		return transportFailure("OPTIONS", err)
	}
	defer resp.Close()

	log := sess.Logger()
	log.Info().Int("status", resp.StatusCode).Msg("OPTIONS response")

	switch {
	case resp.IsAuthFailure():
		sess.SetExitStatus(models.ExitLoginFailure)
		return authFailure("OPTIONS", resp.StatusCode)
	case !resp.IsSuccess():
		return transportFailure("OPTIONS", adapter.StatusError(resp))
	}

	header := resp.Header.Get(adapter.HeaderProtocolVersions)
	advertised := parseVersions(header)
	if len(advertised) == 0 {
		return protocolViolation("OPTIONS", "missing or empty %s header", adapter.HeaderProtocolVersions)
	}

	version := policy(advertised)
	sess.SetProtocolVersion(version)
	log.Info().
		Str("advertised", header).
		Str("protocol_version", version).
		Msg("protocol version selected")

	return nil
}
