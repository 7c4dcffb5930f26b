package state

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

//go:generate counterfeiter . HTTPClientGetter

type HTTPClientGetter interface {
	GetCustomized(endpoint string, f func(*http.Request)) (*http.Response, error)
}

// TrackerClient fetches the running-instance snapshot from the instance
// tracker service. One snapshot is taken per request; nothing is cached.
type TrackerClient struct {
	address string
	client  HTTPClientGetter
	logger  boshlog.Logger
	logTag  string
}

func NewTrackerClient(address string, client HTTPClientGetter, logger boshlog.Logger) *TrackerClient {
	return &TrackerClient{
		address: address,
		client:  client,
		logger:  logger,
		logTag:  "TrackerClient",
	}
}

func (c *TrackerClient) InstancesBySpec(ctx context.Context) (InstancesBySpec, error) {
	endpoint := fmt.Sprintf("%s/v2/state/instances", c.address)

	response, err := c.client.GetCustomized(endpoint, func(req *http.Request) {
		*req = *req.WithContext(ctx)
	})
	if err != nil {
		return nil, bosherr.WrapError(err, "Fetching instance snapshot")
	}
	defer response.Body.Close() //nolint:errcheck

	if response.StatusCode != http.StatusOK {
		return nil, bosherr.Errorf("Fetching instance snapshot: status %d", response.StatusCode)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, bosherr.WrapError(err, "Reading instance snapshot")
	}

	var snapshot InstancesBySpec
	if err := json.Unmarshal(responseBytes, &snapshot); err != nil {
		return nil, bosherr.WrapError(err, "Parsing instance snapshot")
	}

	c.logger.Debug(c.logTag, "snapshot contains %d specs", len(snapshot))

	return snapshot, nil
}
