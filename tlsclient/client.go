package tlsclient

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/tlsconfig"

	"github.com/cloudfoundry/bosh-utils/httpclient"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

// NewFromFiles builds the mutual-TLS client used to reach one of the
// collaborating subsystems (instance tracker, group registry, health,
// coordinator). serverName pins the certificate identity the subsystem must
// present.
func NewFromFiles(serverName, caFile, clientCertFile, clientKeyFile string, timeout time.Duration, logger boshlog.Logger) (*httpclient.HTTPClient, error) {
	cert, err := tls.LoadX509KeyPair(clientCertFile, clientKeyFile)
	if err != nil {
		return nil, err
	}

	caCert, err := os.ReadFile(caFile)
	if err != nil {
		return nil, err
	}

	return New(serverName, caCert, cert, timeout, logger)
}

func New(serverName string, caCert []byte, cert tls.Certificate, timeout time.Duration, logger boshlog.Logger) (*httpclient.HTTPClient, error) {
	caCertPool := x509.NewCertPool()
	caCertPool.AppendCertsFromPEM(caCert)

	tlsConfig, err := tlsconfig.Build(
		tlsconfig.WithIdentity(cert),
		tlsconfig.WithInternalServiceDefaults(),
	).Client(
		tlsconfig.WithAuthority(caCertPool),
		tlsconfig.WithServerName(serverName),
	)
	if err != nil {
		return nil, err
	}
	tlsConfig.ClientSessionCache = tls.NewLRUClientSessionCache(10000)

	transport := &http.Transport{
		TLSClientConfig: tlsConfig,
	}
	client := &http.Client{Transport: transport}
	client.Timeout = timeout

	return httpclient.NewHTTPClient(
		client,
		logger,
	), nil
}
