package monitoring

import (
	"context"
	"net/http"
	"time"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsServer struct {
	server *http.Server
	logger boshlog.Logger
	logTag string
}

func NewMetricsServer(listenAddress string, gatherer prometheus.Gatherer, logger boshlog.Logger) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &MetricsServer{
		server: &http.Server{Addr: listenAddress, Handler: mux},
		logger: logger,
		logTag: "MetricsServer",
	}
}

func (m *MetricsServer) Run(shutdown chan struct{}) error {
	errs := make(chan error, 1)
	go func() {
		errs <- m.server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return bosherr.WrapError(err, "setting up the metrics listener")
	case <-shutdown:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := m.server.Shutdown(ctx); err != nil {
			return bosherr.WrapError(err, "tearing down the metrics listener")
		}
		m.logger.Debug(m.logTag, "metrics listener stopped")
		return nil
	}
}
