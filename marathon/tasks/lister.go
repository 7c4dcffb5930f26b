package tasks

import (
	"context"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"golang.org/x/sync/errgroup"

	"github.com/augi/marathon/marathon/auth"
	"github.com/augi/marathon/marathon/groups"
	"github.com/augi/marathon/marathon/healthiness"
	"github.com/augi/marathon/marathon/state"
)

//go:generate counterfeiter . InstanceTracker

type InstanceTracker interface {
	InstancesBySpec(ctx context.Context) (state.InstancesBySpec, error)
}

//go:generate counterfeiter . GroupRegistry

type GroupRegistry interface {
	Apps(ctx context.Context, ids []state.AppID) (map[state.AppID]*groups.AppSpec, error)
}

// Listing is one request's worth of joined cluster state. Tasks feeds the
// structured rendering; Specs (restricted to apps the caller may view) plus
// Snapshot feed the plain-text one, which needs per-app context the
// flattened tasks discard.
type Listing struct {
	Tasks    []EnrichedTask
	Specs    map[state.AppID]*groups.AppSpec
	Snapshot state.InstancesBySpec
}

// Lister drives the enrichment pipeline: snapshot the instance tracker, then
// resolve the registry lookup and the health fan-out concurrently, then join.
// It holds no per-request state; every List call starts from fresh snapshots.
type Lister struct {
	tracker    InstanceTracker
	registry   GroupRegistry
	health     healthiness.StatusLister
	authorizer auth.Authorizer
	logger     boshlog.Logger
	logTag     string
}

func NewLister(
	tracker InstanceTracker,
	registry GroupRegistry,
	health healthiness.StatusLister,
	authorizer auth.Authorizer,
	logger boshlog.Logger,
) *Lister {
	return &Lister{
		tracker:    tracker,
		registry:   registry,
		health:     health,
		authorizer: authorizer,
		logger:     logger,
		logTag:     "TaskLister",
	}
}

func (l *Lister) List(ctx context.Context, identity auth.Identity, filter state.ConditionSet) (Listing, error) {
	snapshot, err := l.tracker.InstancesBySpec(ctx)
	if err != nil {
		return Listing{}, bosherr.WrapError(err, "Fetching instance snapshot")
	}

	appIDs := snapshot.AppIDs()

	var specs map[state.AppID]*groups.AppSpec
	var health map[state.InstanceID][]healthiness.Result

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var lookupErr error
		specs, lookupErr = l.registry.Apps(groupCtx, appIDs)
		return lookupErr
	})
	group.Go(func() error {
		var fanOutErr error
		health, fanOutErr = healthiness.FanOutStatuses(groupCtx, l.health, appIDs)
		return fanOutErr
	})
	if err := group.Wait(); err != nil {
		return Listing{}, err
	}

	canView := func(appID state.AppID) bool {
		return l.authorizer.CanView(identity, appID)
	}

	permitted := map[state.AppID]*groups.AppSpec{}
	for appID, spec := range specs {
		if canView(appID) {
			permitted[appID] = spec
		}
	}

	enriched := Enrich(snapshot, specs, health, canView, filter)

	l.logger.Debug(l.logTag, "listing for '%s': %d tasks across %d specs", identity, len(enriched), len(permitted))

	return Listing{
		Tasks:    enriched,
		Specs:    permitted,
		Snapshot: snapshot,
	}, nil
}
