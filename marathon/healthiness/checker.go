package healthiness

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/augi/marathon/marathon/state"
)

//go:generate counterfeiter . HTTPClientGetter

type HTTPClientGetter interface {
	GetCustomized(endpoint string, f func(*http.Request)) (*http.Response, error)
}

//go:generate counterfeiter . StatusLister

// StatusLister answers one health-status query: all known health results
// for the instances of a single app, keyed by instance id.
type StatusLister interface {
	Statuses(ctx context.Context, appID state.AppID) (map[state.InstanceID][]Result, error)
}

type checker struct {
	address string
	client  HTTPClientGetter
	logger  boshlog.Logger
	logTag  string
}

// NewChecker builds the HTTP client for the health subsystem.
func NewChecker(address string, client HTTPClientGetter, logger boshlog.Logger) StatusLister {
	return &checker{
		address: address,
		client:  client,
		logger:  logger,
		logTag:  "HealthChecker",
	}
}

func (c *checker) Statuses(ctx context.Context, appID state.AppID) (map[state.InstanceID][]Result, error) {
	// appID is path-like ("/ops/ingest") and joins the route directly
	endpoint := fmt.Sprintf("%s/v2/health%s/statuses", c.address, appID)

	response, err := c.client.GetCustomized(endpoint, func(req *http.Request) {
		*req = *req.WithContext(ctx)
	})
	if err != nil {
		return nil, err
	}
	defer response.Body.Close() //nolint:errcheck

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("health subsystem answered %d for '%s'", response.StatusCode, appID)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	var statuses map[state.InstanceID][]Result
	if err := json.Unmarshal(responseBytes, &statuses); err != nil {
		return nil, err
	}

	c.logger.Debug(c.logTag, "health statuses for '%s': %d instances", appID, len(statuses))

	return statuses, nil
}
