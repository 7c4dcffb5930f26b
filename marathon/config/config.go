package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

type Config struct {
	Address string `json:"address"`
	Port    int    `json:"port"`

	// AdvertisedAddress is what the coordinator announces for this node; the
	// leadership gate compares it against the announced leader.
	AdvertisedAddress string `json:"advertised_address"`

	CertificateFile string `json:"certificate_file"`
	PrivateKeyFile  string `json:"private_key_file"`
	CAFile          string `json:"ca_file"`

	PolicyFile string `json:"policy_file"`

	Tracker     UpstreamConfig    `json:"instance_tracker"`
	Registry    UpstreamConfig    `json:"group_registry"`
	Health      UpstreamConfig    `json:"health"`
	Coordinator CoordinatorConfig `json:"coordinator"`

	Metrics MetricsConfig `json:"metrics"`

	ShutdownTimeout DurationJSON `json:"shutdown_timeout,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
}

// UpstreamConfig points at one of the collaborating subsystems; each is
// reached over mTLS with its own certificate name.
type UpstreamConfig struct {
	URL             string       `json:"url"`
	ServerName      string       `json:"server_name"`
	CAFile          string       `json:"ca_file"`
	CertificateFile string       `json:"certificate_file"`
	PrivateKeyFile  string       `json:"private_key_file"`
	RequestTimeout  DurationJSON `json:"request_timeout,omitempty"`
}

type CoordinatorConfig struct {
	UpstreamConfig
	PollInterval DurationJSON `json:"poll_interval,omitempty"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Address string `json:"address"`
	Port    int    `json:"port"`
}

func (c Config) GetLogLevel() (boshlog.LogLevel, error) {
	level, err := boshlog.Levelify(c.LogLevel)
	if err != nil {
		return boshlog.LevelNone, err
	}
	return level, nil
}

type DurationJSON time.Duration

func (t *DurationJSON) UnmarshalJSON(b []byte) error {
	var s string

	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	timeoutDuration, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*t = DurationJSON(timeoutDuration)

	return nil
}

func (t DurationJSON) MarshalJSON() (b []byte, err error) {
	d := time.Duration(t)
	return []byte(fmt.Sprintf(`"%s"`, d.String())), nil
}

func NewDefaultConfig() Config {
	return Config{
		ShutdownTimeout: DurationJSON(5 * time.Second),
		Coordinator: CoordinatorConfig{
			PollInterval: DurationJSON(5 * time.Second),
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Address: "127.0.0.1",
			Port:    58088,
		},
		LogLevel: boshlog.AsString(boshlog.LevelDebug),
	}
}

func LoadFromFile(configFilePath string) (Config, error) {
	configFileContents, err := os.ReadFile(configFilePath)
	if err != nil {
		return Config{}, err
	}

	c := NewDefaultConfig()
	if err := json.Unmarshal(configFileContents, &c); err != nil {
		return Config{}, err
	}

	if c.Port == 0 {
		return Config{}, errors.New("port is required")
	}

	if c.AdvertisedAddress == "" {
		return Config{}, errors.New("advertised_address is required")
	}

	for name, upstream := range map[string]UpstreamConfig{
		"instance_tracker": c.Tracker,
		"group_registry":   c.Registry,
		"health":           c.Health,
		"coordinator":      c.Coordinator.UpstreamConfig,
	} {
		if upstream.URL == "" {
			return Config{}, fmt.Errorf("%s.url is required", name)
		}
	}

	return c, nil
}
