package monitoring_test

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/augi/marathon/marathon/monitoring"
)

var _ = Describe("MetricsServer", func() {
	It("serves the gathered metrics until shut down", func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		address := listener.Addr().String()
		Expect(listener.Close()).To(Succeed())

		registry := prometheus.NewRegistry()
		metrics := monitoring.NewRequestMetrics(registry)
		metrics.Record(monitoring.OutcomeOK, 5*time.Millisecond)

		server := monitoring.NewMetricsServer(address, registry, &loggerfakes.FakeLogger{})

		shutdown := make(chan struct{})
		done := make(chan error, 1)
		go func() {
			done <- server.Run(shutdown)
		}()

		endpoint := fmt.Sprintf("http://%s/metrics", address)
		var response *http.Response
		Eventually(func() error {
			var getErr error
			response, getErr = http.Get(endpoint)
			return getErr
		}).Should(Succeed())

		body, err := io.ReadAll(response.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(response.Body.Close()).To(Succeed())
		Expect(string(body)).To(ContainSubstring("marathon_tasks_api_requests_total"))

		close(shutdown)
		Eventually(done).Should(Receive(BeNil()))
	})

	It("fails when the listen address is unusable", func() {
		registry := prometheus.NewRegistry()
		server := monitoring.NewMetricsServer("256.256.256.256:1", registry, &loggerfakes.FakeLogger{})

		err := server.Run(make(chan struct{}))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("setting up the metrics listener"))
	})
})
