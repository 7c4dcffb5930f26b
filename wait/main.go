package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/cloudfoundry/bosh-utils/httpclient"
	"github.com/cloudfoundry/bosh-utils/logger"

	"github.com/augi/marathon/tlsclient"
)

// wait blocks until the task listing endpoint answers 200, which requires a
// reachable listener, an elected leader, and healthy upstreams. Deployment
// scripts run it before routing traffic at a freshly started node.
func main() {
	url := flag.String("url", "", "task listing URL to probe")
	timeout := flag.Duration("timeout", time.Minute, "amount of time to wait for the probe to pass")
	serverName := flag.String("serverName", "", "expected server certificate name")
	caFile := flag.String("ca", "", "CA certificate file")
	certFile := flag.String("cert", "", "client certificate file")
	keyFile := flag.String("key", "", "client private key file")
	logFormat := flag.String("logFormat", "rfc3339", "log format")

	flag.Parse()

	bomb := time.NewTimer(*timeout)

	success := make(chan bool)

	log := logger.NewAsyncWriterLogger(logger.LevelDebug, os.Stdout)
	if *logFormat == "rfc3339" {
		log.UseRFC3339Timestamps()
	}

	client, err := getClient(log, *serverName, *caFile, *certFile, *keyFile)
	if err != nil {
		log.Error("wait", err.Error())
		log.FlushTimeout(5 * time.Second) //nolint:errcheck
		os.Exit(1)
	}
	log.Info("wait", "probing %s", *url)

	go func() {
		for {
			response, err := client.Get(*url)
			if err == nil {
				response.Body.Close() //nolint:errcheck
				if response.StatusCode == http.StatusOK {
					success <- true
					return
				}
				log.Debug("wait", "status %d", response.StatusCode)
			} else {
				log.Debug("wait", err.Error())
			}
			time.Sleep(1 * time.Second)
		}
	}()

	select {
	case <-bomb.C:
		log.Error("wait", "timeout")
		log.FlushTimeout(5 * time.Second) //nolint:errcheck
		os.Exit(1)
	case <-success:
		log.Info("wait", "success")
		log.FlushTimeout(5 * time.Second) //nolint:errcheck
		os.Exit(0)
	}
}

func getClient(log logger.Logger, serverName, caFile, certFile, keyFile string) (*httpclient.HTTPClient, error) {
	if caFile == "" {
		log.Info("wait", "no CA file given, probing without TLS")
		return httpclient.NewHTTPClient(&http.Client{Timeout: time.Second}, log), nil
	}
	return tlsclient.NewFromFiles(serverName, caFile, certFile, keyFile, time.Second, log)
}
