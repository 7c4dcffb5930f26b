package tasks

import (
	"github.com/augi/marathon/marathon/groups"
	"github.com/augi/marathon/marathon/healthiness"
	"github.com/augi/marathon/marathon/state"
)

// EnrichedTask is the denormalized listing record: one task joined with its
// instance's placement, the health results known for that instance, and the
// service ports its app spec configures. Both slices may be empty but are
// never nil.
type EnrichedTask struct {
	AppID        state.AppID
	Task         state.Task
	Agent        state.AgentInfo
	Results      []healthiness.Result
	ServicePorts []int
}

// Enrich joins the three per-request snapshots into the flat task listing.
// It is a pure function: no fetching, no mutation of its inputs, and for
// fixed inputs a fixed output (apps in sorted id order, instances in
// snapshot order, tasks in sorted id order). No public ordering is promised.
//
// An app absent from specs is excluded no matter what canView says; absence
// means unauthorized, not public. An instance absent from health yields
// tasks with zero results, never an error.
func Enrich(
	snapshot state.InstancesBySpec,
	specs map[state.AppID]*groups.AppSpec,
	health map[state.InstanceID][]healthiness.Result,
	canView func(state.AppID) bool,
	filter state.ConditionSet,
) []EnrichedTask {
	enriched := []EnrichedTask{}

	for _, appID := range snapshot.AppIDs() {
		spec, present := specs[appID]
		if !present || !canView(appID) {
			continue
		}

		servicePorts := spec.ServicePorts
		if servicePorts == nil {
			servicePorts = []int{}
		}

		for _, instance := range snapshot[appID] {
			if !filter.Matches(instance.Condition) {
				continue
			}

			results := health[instance.ID]
			if results == nil {
				results = []healthiness.Result{}
			}

			for _, taskID := range instance.TaskIDs() {
				enriched = append(enriched, EnrichedTask{
					AppID:        appID,
					Task:         instance.Tasks[taskID],
					Agent:        instance.Agent,
					Results:      results,
					ServicePorts: servicePorts,
				})
			}
		}
	}

	return enriched
}
