package service

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/models"
)

// FallbackDeviceID is used when no device id can be read or stored.
const FallbackDeviceID = "droid0"

const deviceIDPrefix = "droid"

// LoadSessionIdentity returns the device identity kept in path, creating
// the file with a fresh id on first use. Any file error yields
// [FallbackDeviceID].
func LoadSessionIdentity(path, deviceType string, log *logger.Logger) models.SessionIdentity {
	identity := models.SessionIdentity{DeviceID: FallbackDeviceID, DeviceType: deviceType}

	id, err := readDeviceID(path)
	if err == nil && id != "" {
		identity.DeviceID = id
		return identity
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("cannot read device id, using fallback")
		return identity
	}

	id = newDeviceID()
	if err = writeDeviceID(path, id); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("cannot store device id, using fallback")
		return identity
	}

	log.Info().Str("device_id", id).Msg("generated new device id")
	identity.DeviceID = id
	return identity
}

func newDeviceID() string {
	return deviceIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func readDeviceID(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if sc.Scan() {
		return strings.TrimSpace(sc.Text()), nil
	}
	return "", sc.Err()
}

func writeDeviceID(path, id string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(id+"\n"), 0o600)
}
