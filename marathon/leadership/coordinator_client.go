package leadership

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

//go:generate counterfeiter . HTTPClientGetter

type HTTPClientGetter interface {
	GetCustomized(endpoint string, f func(*http.Request)) (*http.Response, error)
}

type CoordinatorClient struct {
	address string
	client  HTTPClientGetter
}

func NewCoordinatorClient(address string, client HTTPClientGetter) *CoordinatorClient {
	return &CoordinatorClient{address: address, client: client}
}

func (c *CoordinatorClient) Leader(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("%s/v2/leader", c.address)

	response, err := c.client.GetCustomized(endpoint, func(req *http.Request) {
		*req = *req.WithContext(ctx)
	})
	if err != nil {
		return "", bosherr.WrapError(err, "Fetching leader")
	}
	defer response.Body.Close() //nolint:errcheck

	if response.StatusCode != http.StatusOK {
		return "", bosherr.Errorf("Fetching leader: status %d", response.StatusCode)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", bosherr.WrapError(err, "Reading leader response")
	}

	var parsed struct {
		Leader string `json:"leader"`
	}
	if err := json.Unmarshal(responseBytes, &parsed); err != nil {
		return "", bosherr.WrapError(err, "Parsing leader response")
	}

	return parsed.Leader, nil
}
