package state

import "strings"

// Condition is the lifecycle state of an instance.
type Condition string

const (
	ConditionStaging     Condition = "Staging"
	ConditionStarting    Condition = "Starting"
	ConditionRunning     Condition = "Running"
	ConditionUnreachable Condition = "Unreachable"
	ConditionKilling     Condition = "Killing"
	ConditionFinished    Condition = "Finished"
	ConditionFailed      Condition = "Failed"
	ConditionKilled      Condition = "Killed"
	ConditionUnknown     Condition = "Unknown"
)

type ConditionSet map[Condition]struct{}

// ParseConditions maps caller-supplied status strings onto the conditions the
// listing filter recognizes. Matching is case-insensitive and only "running"
// and "staging" are recognized; anything else is dropped without error. An
// empty result means no filtering, so a request made up entirely of
// unrecognized strings behaves the same as a request with no filter.
func ParseConditions(statuses []string) ConditionSet {
	set := ConditionSet{}
	for _, status := range statuses {
		switch strings.ToLower(status) {
		case "running":
			set[ConditionRunning] = struct{}{}
		case "staging":
			set[ConditionStaging] = struct{}{}
		}
	}
	return set
}

// Matches reports whether an instance in the given condition passes the
// filter. The empty set matches everything.
func (s ConditionSet) Matches(condition Condition) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[condition]
	return ok
}
