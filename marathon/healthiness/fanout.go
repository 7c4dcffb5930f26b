package healthiness

import (
	"context"
	"sync"

	"code.cloudfoundry.org/workpool"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"

	"github.com/augi/marathon/marathon/state"
)

// MaxInFlightStatusQueries caps the number of simultaneously outstanding
// queries to the health subsystem, however many apps the snapshot holds.
const MaxInFlightStatusQueries = 4

// FanOutStatuses queries the health subsystem once per app id and unions the
// per-app answers into a single instance-id keyed map. Queries complete in
// any order; the union is commutative because instance ids belong to exactly
// one app. On the first failed query the fan-out stops starting new queries,
// drains the ones in flight, and returns that failure; partial results are
// never returned. Context cancellation is observed the same way, so no query
// outlives the enclosing request.
func FanOutStatuses(ctx context.Context, lister StatusLister, appIDs []state.AppID) (map[state.InstanceID][]Result, error) {
	merged := map[state.InstanceID][]Result{}

	var mutex sync.Mutex
	var firstErr error

	works := make([]func(), 0, len(appIDs))
	for _, appID := range appIDs {
		appID := appID
		works = append(works, func() {
			mutex.Lock()
			abandoned := firstErr != nil || ctx.Err() != nil
			mutex.Unlock()
			if abandoned {
				return
			}

			statuses, err := lister.Statuses(ctx, appID)

			mutex.Lock()
			defer mutex.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = bosherr.WrapErrorf(err, "Fetching health statuses for '%s'", appID)
				}
				return
			}

			for instanceID, results := range statuses {
				merged[instanceID] = results
			}
		})
	}

	throttler, err := workpool.NewThrottler(MaxInFlightStatusQueries, works)
	if err != nil {
		return nil, bosherr.WrapError(err, "Creating health fan-out throttler")
	}
	throttler.Work()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return merged, nil
}
