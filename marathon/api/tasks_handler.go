package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/nu7hatch/gouuid"

	"github.com/augi/marathon/marathon/auth"
	"github.com/augi/marathon/marathon/monitoring"
	"github.com/augi/marathon/marathon/state"
	"github.com/augi/marathon/marathon/tasks"
)

//go:generate counterfeiter . Elector

type Elector interface {
	IsLeader() bool
	Leader() string
}

//go:generate counterfeiter . Authenticator

type Authenticator interface {
	Authenticate(r *http.Request) (auth.Identity, error)
}

//go:generate counterfeiter . TaskLister

type TaskLister interface {
	List(ctx context.Context, identity auth.Identity, filter state.ConditionSet) (tasks.Listing, error)
}

//go:generate counterfeiter . RequestRecorder

type RequestRecorder interface {
	Record(outcome string, elapsed time.Duration)
}

// TasksHandler is the listing front-end: leadership gate, then
// authentication gate, then content negotiation around the pipeline. Each
// gate short-circuits; the pipeline never runs for a gated request.
type TasksHandler struct {
	elector       Elector
	authenticator Authenticator
	lister        TaskLister
	recorder      RequestRecorder
	logger        boshlog.Logger
	logTag        string
}

func NewTasksHandler(
	elector Elector,
	authenticator Authenticator,
	lister TaskLister,
	recorder RequestRecorder,
	logger boshlog.Logger,
) *TasksHandler {
	return &TasksHandler{
		elector:       elector,
		authenticator: authenticator,
		lister:        lister,
		recorder:      recorder,
		logger:        logger,
		logTag:        "TasksHandler",
	}
}

func (h *TasksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	requestID := h.requestID()

	if !h.elector.IsLeader() {
		h.recorder.Record(monitoring.OutcomeNonLeader, time.Since(started))
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "not the leader, current leader: %s\n", h.elector.Leader()) //nolint:errcheck
		return
	}

	identity, err := h.authenticator.Authenticate(r)
	if err != nil {
		h.logger.Debug(h.logTag, "[%s] unauthenticated request: %s", requestID, err.Error())
		h.recorder.Record(monitoring.OutcomeUnauthenticated, time.Since(started))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	filter := state.ParseConditions(r.URL.Query()["status"])

	listing, err := h.lister.List(r.Context(), identity, filter)
	if err != nil {
		h.logger.Error(h.logTag, "[%s] listing tasks: %s", requestID, err.Error())
		h.recorder.Record(monitoring.OutcomeUpstreamError, time.Since(started))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if prefersPlainText(r.Header.Get("Accept")) {
		w.Header().Set("Content-Type", "text/plain")
		if err := RenderEndpoints(w, listing.Specs, listing.Snapshot); err != nil {
			h.logger.Error(h.logTag, "[%s] rendering endpoints: %s", requestID, err.Error())
		}
	} else {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(AssembleTaskList(listing.Tasks)); err != nil {
			h.logger.Error(h.logTag, "[%s] encoding task list: %s", requestID, err.Error())
		}
	}

	h.recorder.Record(monitoring.OutcomeOK, time.Since(started))
	h.logger.Debug(h.logTag, "[%s] served %d tasks to '%s'", requestID, len(listing.Tasks), identity)
}

// prefersPlainText implements the negotiation rule: an explicit text/plain
// preference selects the text rendering, anything else (including no Accept
// header at all) gets the structured default. The first recognized media
// range wins.
func prefersPlainText(accept string) bool {
	for _, mediaRange := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.SplitN(mediaRange, ";", 2)[0])
		switch strings.ToLower(mediaType) {
		case "text/plain":
			return true
		case "application/json":
			return false
		}
	}
	return false
}

func (h *TasksHandler) requestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}
