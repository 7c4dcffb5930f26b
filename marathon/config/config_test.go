package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/augi/marathon/marathon/config"
)

var _ = Describe("Config", func() {
	var configFile string

	writeConfig := func(contents string) {
		Expect(os.WriteFile(configFile, []byte(contents), 0o600)).To(Succeed())
	}

	BeforeEach(func() {
		configFile = filepath.Join(GinkgoT().TempDir(), "config.json")
	})

	Describe("LoadFromFile", func() {
		It("loads a complete configuration", func() {
			writeConfig(`{
				"address": "0.0.0.0",
				"port": 8443,
				"advertised_address": "10.0.0.5:8443",
				"certificate_file": "/var/certs/server.crt",
				"private_key_file": "/var/certs/server.key",
				"ca_file": "/var/certs/ca.crt",
				"policy_file": "/var/policy.yml",
				"instance_tracker": {"url": "https://tracker.internal:7070", "server_name": "tracker"},
				"group_registry": {"url": "https://registry.internal:7071"},
				"health": {"url": "https://health.internal:7072", "request_timeout": "2s"},
				"coordinator": {"url": "https://coordinator.internal:7073", "poll_interval": "10s"},
				"metrics": {"enabled": true, "address": "127.0.0.1", "port": 9102},
				"shutdown_timeout": "15s",
				"log_level": "INFO"
			}`)

			c, err := config.LoadFromFile(configFile)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Port).To(Equal(8443))
			Expect(c.AdvertisedAddress).To(Equal("10.0.0.5:8443"))
			Expect(c.Tracker.URL).To(Equal("https://tracker.internal:7070"))
			Expect(c.Tracker.ServerName).To(Equal("tracker"))
			Expect(c.Health.RequestTimeout).To(Equal(config.DurationJSON(2 * time.Second)))
			Expect(c.Coordinator.URL).To(Equal("https://coordinator.internal:7073"))
			Expect(c.Coordinator.PollInterval).To(Equal(config.DurationJSON(10 * time.Second)))
			Expect(c.Metrics.Enabled).To(BeTrue())
			Expect(c.Metrics.Port).To(Equal(9102))
			Expect(c.ShutdownTimeout).To(Equal(config.DurationJSON(15 * time.Second)))

			level, err := c.GetLogLevel()
			Expect(err).NotTo(HaveOccurred())
			Expect(level).To(Equal(boshlog.LevelInfo))
		})

		It("applies defaults for omitted optional fields", func() {
			writeConfig(`{
				"port": 8443,
				"advertised_address": "10.0.0.5:8443",
				"instance_tracker": {"url": "https://tracker.internal:7070"},
				"group_registry": {"url": "https://registry.internal:7071"},
				"health": {"url": "https://health.internal:7072"},
				"coordinator": {"url": "https://coordinator.internal:7073"}
			}`)

			c, err := config.LoadFromFile(configFile)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.ShutdownTimeout).To(Equal(config.DurationJSON(5 * time.Second)))
			Expect(c.Coordinator.PollInterval).To(Equal(config.DurationJSON(5 * time.Second)))
			Expect(c.Metrics.Enabled).To(BeFalse())
			Expect(c.Metrics.Port).To(Equal(58088))

			level, err := c.GetLogLevel()
			Expect(err).NotTo(HaveOccurred())
			Expect(level).To(Equal(boshlog.LevelDebug))
		})

		It("errors when the file does not exist", func() {
			_, err := config.LoadFromFile(filepath.Join("nonexistent", "config.json"))
			Expect(err).To(HaveOccurred())
		})

		It("errors on malformed JSON", func() {
			writeConfig("{")
			_, err := config.LoadFromFile(configFile)
			Expect(err).To(HaveOccurred())
		})

		It("requires a port", func() {
			writeConfig(`{
				"advertised_address": "10.0.0.5:8443",
				"instance_tracker": {"url": "https://a"},
				"group_registry": {"url": "https://b"},
				"health": {"url": "https://c"},
				"coordinator": {"url": "https://d"}
			}`)

			_, err := config.LoadFromFile(configFile)
			Expect(err).To(MatchError("port is required"))
		})

		It("requires an advertised address", func() {
			writeConfig(`{
				"port": 8443,
				"instance_tracker": {"url": "https://a"},
				"group_registry": {"url": "https://b"},
				"health": {"url": "https://c"},
				"coordinator": {"url": "https://d"}
			}`)

			_, err := config.LoadFromFile(configFile)
			Expect(err).To(MatchError("advertised_address is required"))
		})

		It("requires every upstream URL", func() {
			writeConfig(`{
				"port": 8443,
				"advertised_address": "10.0.0.5:8443",
				"instance_tracker": {"url": "https://a"},
				"group_registry": {"url": "https://b"},
				"coordinator": {"url": "https://d"}
			}`)

			_, err := config.LoadFromFile(configFile)
			Expect(err).To(MatchError("health.url is required"))
		})

		It("rejects a malformed duration", func() {
			writeConfig(`{
				"port": 8443,
				"advertised_address": "10.0.0.5:8443",
				"shutdown_timeout": "never",
				"instance_tracker": {"url": "https://a"},
				"group_registry": {"url": "https://b"},
				"health": {"url": "https://c"},
				"coordinator": {"url": "https://d"}
			}`)

			_, err := config.LoadFromFile(configFile)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetLogLevel", func() {
		It("rejects unknown levels", func() {
			c := config.Config{LogLevel: "verbose-ish"}
			_, err := c.GetLogLevel()
			Expect(err).To(HaveOccurred())
		})
	})
})
