package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/tlsconfig"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/cloudfoundry/bosh-utils/httpclient"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/augi/marathon/marathon/api"
	"github.com/augi/marathon/marathon/auth"
	"github.com/augi/marathon/marathon/config"
	"github.com/augi/marathon/marathon/groups"
	"github.com/augi/marathon/marathon/healthiness"
	"github.com/augi/marathon/marathon/leadership"
	"github.com/augi/marathon/marathon/monitoring"
	"github.com/augi/marathon/marathon/state"
	"github.com/augi/marathon/marathon/tasks"
	"github.com/augi/marathon/tlsclient"
)

func parseFlags() (string, error) {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if configPath == "" {
		return "", errors.New("--config is a required flag")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return "", bosherr.WrapError(err, fmt.Sprintf("Unable to find config file at '%s'", configPath))
	}

	return configPath, nil
}

func main() {
	os.Exit(mainExitCode())
}

func mainExitCode() int {
	logger := boshlog.NewAsyncWriterLogger(boshlog.LevelDebug, os.Stdout)
	logTag := "main"
	defer logger.FlushTimeout(5 * time.Second) //nolint:errcheck

	configPath, err := parseFlags()
	if err != nil {
		logger.Error(logTag, err.Error())
		return 1
	}

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		logger.Error(logTag, err.Error())
		return 1
	}

	logLevel, err := cfg.GetLogLevel()
	if err != nil {
		logger.Error(logTag, err.Error())
		return 1
	}
	logger = boshlog.NewAsyncWriterLogger(logLevel, os.Stdout)

	trackerHTTP, err := upstreamClient(cfg.Tracker, logger)
	if err != nil {
		logger.Error(logTag, fmt.Sprintf("Unable to configure instance tracker client: %s", err.Error()))
		return 1
	}
	registryHTTP, err := upstreamClient(cfg.Registry, logger)
	if err != nil {
		logger.Error(logTag, fmt.Sprintf("Unable to configure group registry client: %s", err.Error()))
		return 1
	}
	healthHTTP, err := upstreamClient(cfg.Health, logger)
	if err != nil {
		logger.Error(logTag, fmt.Sprintf("Unable to configure health client: %s", err.Error()))
		return 1
	}
	coordinatorHTTP, err := upstreamClient(cfg.Coordinator.UpstreamConfig, logger)
	if err != nil {
		logger.Error(logTag, fmt.Sprintf("Unable to configure coordinator client: %s", err.Error()))
		return 1
	}

	authorizer, err := auth.NewPolicyAuthorizerFromFile(cfg.PolicyFile)
	if err != nil {
		logger.Error(logTag, fmt.Sprintf("Unable to load ACL policy: %s", err.Error()))
		return 1
	}

	shutdown := make(chan struct{})

	coordinator := leadership.NewCoordinatorClient(cfg.Coordinator.URL, coordinatorHTTP)
	watcher := leadership.NewWatcher(
		coordinator,
		cfg.AdvertisedAddress,
		time.Duration(cfg.Coordinator.PollInterval),
		clock.NewClock(),
		logger,
	)
	go watcher.Run(shutdown)

	tracker := state.NewTrackerClient(cfg.Tracker.URL, trackerHTTP, logger)
	registry := groups.NewRegistryClient(cfg.Registry.URL, registryHTTP, logger)
	healthChecker := healthiness.NewChecker(cfg.Health.URL, healthHTTP, logger)
	lister := tasks.NewLister(tracker, registry, healthChecker, authorizer, logger)

	metricsRegistry := prometheus.NewRegistry()
	requestMetrics := monitoring.NewRequestMetrics(metricsRegistry)
	if cfg.Metrics.Enabled {
		metricsServer := monitoring.NewMetricsServer(
			fmt.Sprintf("%s:%d", cfg.Metrics.Address, cfg.Metrics.Port),
			metricsRegistry,
			logger,
		)
		go func() {
			if err := metricsServer.Run(shutdown); err != nil {
				logger.Error(logTag, err.Error())
			}
		}()
	}

	handler := api.NewTasksHandler(watcher, auth.NewCommonNameAuthenticator(), lister, requestMetrics, logger)

	mux := http.NewServeMux()
	mux.Handle("/v2/tasks", handler)

	serverConfig, err := serverTLSConfig(cfg)
	if err != nil {
		logger.Error(logTag, fmt.Sprintf("Unable to configure listener TLS: %s", err.Error()))
		return 1
	}

	server := &http.Server{
		Addr:      fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:   mux,
		TLSConfig: serverConfig,
	}

	serveErrs := make(chan error, 1)
	go func() {
		serveErrs <- server.ListenAndServeTLS("", "")
	}()

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-serveErrs:
		logger.Error(logTag, err.Error())
		close(shutdown)
		return 1
	case <-sigterm:
		logger.Info(logTag, "shutting down")
		close(shutdown)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout))
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error(logTag, err.Error())
		return 1
	}

	return 0
}

func upstreamClient(upstream config.UpstreamConfig, logger boshlog.Logger) (*httpclient.HTTPClient, error) {
	timeout := time.Duration(upstream.RequestTimeout)
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return tlsclient.NewFromFiles(
		upstream.ServerName,
		upstream.CAFile,
		upstream.CertificateFile,
		upstream.PrivateKeyFile,
		timeout,
		logger,
	)
}

func serverTLSConfig(cfg config.Config) (*tls.Config, error) {
	caCert, err := os.ReadFile(cfg.CAFile)
	if err != nil {
		return nil, err
	}
	caCertPool := x509.NewCertPool()
	caCertPool.AppendCertsFromPEM(caCert)

	cert, err := tls.LoadX509KeyPair(cfg.CertificateFile, cfg.PrivateKeyFile)
	if err != nil {
		return nil, err
	}

	return tlsconfig.Build(
		tlsconfig.WithIdentity(cert),
		tlsconfig.WithInternalServiceDefaults(),
	).Server(tlsconfig.WithClientAuthentication(caCertPool))
}
