package parser

import (
	"encoding/xml"
	"fmt"

	"github.com/MKhiriev/go-eas-sync/internal/service"
)

// Command status codes.
const (
	statusOK = "1"

	folderStatusInvalidKey = "9"

	pingStatusNoChanges   = "1"
	pingStatusChanges     = "2"
	pingStatusFolderStale = "7"

	syncStatusInvalidKey  = "3"
	syncStatusFolderStale = "12"
)

func malformed(cmd string, err error) error {
	return fmt.Errorf("%w: %s: malformed response: %s", service.ErrProtocolViolation, cmd, err.Error())
}

func unexpectedStatus(cmd, status string) error {
	return fmt.Errorf("%w: %s: unexpected status %q", service.ErrProtocolViolation, cmd, status)
}

func decode(cmd string, body []byte, v any) error {
	if err := xml.Unmarshal(body, v); err != nil {
		return malformed(cmd, err)
	}
	return nil
}
