package leadership_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/augi/marathon/marathon/leadership"
	"github.com/augi/marathon/marathon/leadership/leadershipfakes"
)

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

var _ = Describe("CoordinatorClient", func() {
	var (
		fakeClient *leadershipfakes.FakeHTTPClientGetter
		client     *leadership.CoordinatorClient
	)

	BeforeEach(func() {
		fakeClient = &leadershipfakes.FakeHTTPClientGetter{}
		client = leadership.NewCoordinatorClient("https://coordinator.internal:7070", fakeClient)
	})

	It("queries the leader route and returns the announced leader", func() {
		fakeClient.GetCustomizedReturns(httpResponse(http.StatusOK, `{"leader": "10.0.0.5:8080"}`), nil)

		leader, err := client.Leader(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(leader).To(Equal("10.0.0.5:8080"))

		endpoint, _ := fakeClient.GetCustomizedArgsForCall(0)
		Expect(endpoint).To(Equal("https://coordinator.internal:7070/v2/leader"))
	})

	It("attaches the request context", func() {
		fakeClient.GetCustomizedReturns(httpResponse(http.StatusOK, `{"leader": ""}`), nil)

		type marker struct{}
		ctx := context.WithValue(context.Background(), marker{}, "set")

		_, err := client.Leader(ctx)
		Expect(err).NotTo(HaveOccurred())

		_, customize := fakeClient.GetCustomizedArgsForCall(0)
		request, newErr := http.NewRequest(http.MethodGet, "https://coordinator.internal:7070/v2/leader", nil)
		Expect(newErr).NotTo(HaveOccurred())
		customize(request)
		Expect(request.Context().Value(marker{})).To(Equal("set"))
	})

	It("propagates transport failures", func() {
		fakeClient.GetCustomizedReturns(nil, errors.New("connection refused"))

		_, err := client.Leader(context.Background())
		Expect(err).To(MatchError(ContainSubstring("connection refused")))
	})

	It("treats non-200 answers as failures", func() {
		fakeClient.GetCustomizedReturns(httpResponse(http.StatusBadGateway, ""), nil)

		_, err := client.Leader(context.Background())
		Expect(err).To(MatchError(ContainSubstring("502")))
	})

	It("fails on a malformed response body", func() {
		fakeClient.GetCustomizedReturns(httpResponse(http.StatusOK, "not-json"), nil)

		_, err := client.Leader(context.Background())
		Expect(err).To(MatchError(ContainSubstring("Parsing leader response")))
	})
})
