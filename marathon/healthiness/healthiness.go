package healthiness

import (
	"time"

	"github.com/augi/marathon/marathon/state"
)

// Result is one point-in-time health observation for an instance. Zero or
// more results may exist per instance; an instance the health subsystem has
// never sampled simply has none.
type Result struct {
	InstanceID    state.InstanceID `json:"instance_id"`
	Alive         bool             `json:"alive"`
	FirstSuccess  time.Time        `json:"first_success,omitempty"`
	LastSuccess   time.Time        `json:"last_success,omitempty"`
	LastFailure   time.Time        `json:"last_failure,omitempty"`
	FailureCause  string           `json:"failure_cause,omitempty"`
	ConsecutiveOK int              `json:"consecutive_ok,omitempty"`
}
