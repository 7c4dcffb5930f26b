package groups

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/augi/marathon/marathon/state"
)

//go:generate counterfeiter . HTTPClientPoster

type HTTPClientPoster interface {
	PostCustomized(endpoint string, payload []byte, f func(*http.Request)) (*http.Response, error)
}

// RegistryClient resolves app ids against the group registry with a single
// bulk lookup per request. Ids without a registry entry are simply absent
// from the returned map.
type RegistryClient struct {
	address string
	client  HTTPClientPoster
	logger  boshlog.Logger
	logTag  string
}

func NewRegistryClient(address string, client HTTPClientPoster, logger boshlog.Logger) *RegistryClient {
	return &RegistryClient{
		address: address,
		client:  client,
		logger:  logger,
		logTag:  "RegistryClient",
	}
}

func (c *RegistryClient) Apps(ctx context.Context, ids []state.AppID) (map[state.AppID]*AppSpec, error) {
	if len(ids) == 0 {
		return map[state.AppID]*AppSpec{}, nil
	}

	payload, err := json.Marshal(struct {
		IDs []state.AppID `json:"ids"`
	}{IDs: ids})
	if err != nil {
		return nil, bosherr.WrapError(err, "Encoding registry lookup")
	}

	endpoint := fmt.Sprintf("%s/v2/groups/lookup", c.address)
	response, err := c.client.PostCustomized(endpoint, payload, func(req *http.Request) {
		*req = *req.WithContext(ctx)
		req.Header.Set("Content-Type", "application/json")
	})
	if err != nil {
		return nil, bosherr.WrapError(err, "Looking up app specs")
	}
	defer response.Body.Close() //nolint:errcheck

	if response.StatusCode != http.StatusOK {
		return nil, bosherr.Errorf("Looking up app specs: status %d", response.StatusCode)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, bosherr.WrapError(err, "Reading registry response")
	}

	var specs map[state.AppID]*AppSpec
	if err := json.Unmarshal(responseBytes, &specs); err != nil {
		return nil, bosherr.WrapError(err, "Parsing registry response")
	}

	c.logger.Debug(c.logTag, "resolved %d of %d app ids", len(specs), len(ids))

	return specs, nil
}
