package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-host server host (optionally host:port)
//	-u account user name
//	-p account password
//	-ssl use https
//	-trust-all-certs accept any server certificate
//	-lookback mail sync window (1d, 3d, 1w, 2w, 1m, all)
//	-d database DSN
//	-a control API address in format [host]:[port]
//	-c/-config json file path with configs
//	-connect-timeout connect budget (e.g., "10s")
//	-read-timeout read budget for non-Ping commands (e.g., "20m")
//	-heartbeat Ping heartbeat interval (e.g., "15m")
//	-device-type device type sent to the server
//	-device-id-file file the device id is persisted in
//	-log-file log file path
//	-validate validate the account and exit
func ParseFlags() *StructuredConfig {
	var controlAddress NetAddress
	var host, username, password, lookback string
	var useSSL, trustAllCerts bool
	var databaseDSN string
	var jsonConfigPath string
	var connectTimeout, readTimeout, heartbeat time.Duration
	var deviceType, deviceIDFile, attachmentDir, logFile string
	var validateOnly bool

	flag.StringVar(&host, "host", "", "Server host")
	flag.StringVar(&username, "u", "", "Account user name")
	flag.StringVar(&password, "p", "", "Account password")
	flag.BoolVar(&useSSL, "ssl", false, "Use https")
	flag.BoolVar(&trustAllCerts, "trust-all-certs", false, "Accept any server certificate")
	flag.StringVar(&lookback, "lookback", "", "Mail sync window: 1d, 3d, 1w, 2w, 1m, all")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.Var(&controlAddress, "a", "Control API address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&connectTimeout, "connect-timeout", 0, "Connect timeout (e.g., 10s)")
	flag.DurationVar(&readTimeout, "read-timeout", 0, "Read timeout (e.g., 20m)")
	flag.DurationVar(&heartbeat, "heartbeat", 0, "Ping heartbeat interval (e.g., 15m)")
	flag.StringVar(&deviceType, "device-type", "", "Device type")
	flag.StringVar(&deviceIDFile, "device-id-file", "", "Device id file path")
	flag.StringVar(&attachmentDir, "attachment-dir", "", "Directory for fetched attachments")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.BoolVar(&validateOnly, "validate", false, "Validate the account and exit")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceType:    deviceType,
			DeviceIDFile:  deviceIDFile,
			AttachmentDir: attachmentDir,
			LogFile:       logFile,
			ValidateOnly:  validateOnly,
		},
		Account: Account{
			Host:          host,
			Username:      username,
			Password:      password,
			UseSSL:        useSSL,
			TrustAllCerts: trustAllCerts,
			Lookback:      lookback,
		},
		Adapter: Adapter{
			ConnectTimeout: connectTimeout,
			ReadTimeout:    readTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: controlAddress.String(),
		},
		Workers: Workers{
			PingHeartbeat: heartbeat,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
