package leadership

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

//go:generate counterfeiter . Coordinator

// Coordinator answers who currently holds cluster leadership, typically by
// asking the election backend.
type Coordinator interface {
	Leader(ctx context.Context) (string, error)
}

// Watcher polls the coordinator and caches the announced leader so the
// request path can gate on leadership without a per-request round trip.
// Until the first successful poll nobody is considered leader.
type Watcher struct {
	coordinator  Coordinator
	ownAddress   string
	pollInterval time.Duration
	clock        clock.Clock

	leader      string
	leaderMutex *sync.RWMutex

	logger boshlog.Logger
	logTag string
}

func NewWatcher(coordinator Coordinator, ownAddress string, pollInterval time.Duration, clock clock.Clock, logger boshlog.Logger) *Watcher {
	return &Watcher{
		coordinator:  coordinator,
		ownAddress:   ownAddress,
		pollInterval: pollInterval,
		clock:        clock,
		leaderMutex:  &sync.RWMutex{},
		logger:       logger,
		logTag:       "LeadershipWatcher",
	}
}

func (w *Watcher) IsLeader() bool {
	return w.Leader() == w.ownAddress
}

func (w *Watcher) Leader() string {
	w.leaderMutex.RLock()
	defer w.leaderMutex.RUnlock()
	return w.leader
}

func (w *Watcher) Run(signal <-chan struct{}) {
	w.poll()

	timer := w.clock.NewTimer(w.pollInterval)
	defer timer.Stop()

	for {
		select {
		case <-timer.C():
			w.poll()
			timer.Reset(w.pollInterval)
		case <-signal:
			return
		}
	}
}

func (w *Watcher) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), w.pollInterval)
	defer cancel()

	leader, err := w.coordinator.Leader(ctx)
	if err != nil {
		w.logger.Warn(w.logTag, "could not resolve leader: %s", err.Error())
		return
	}

	w.leaderMutex.Lock()
	previous := w.leader
	w.leader = leader
	w.leaderMutex.Unlock()

	if previous != leader {
		w.logger.Info(w.logTag, "leader changed from '%s' to '%s'", previous, leader)
	}
}
