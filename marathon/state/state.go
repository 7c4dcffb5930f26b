package state

import (
	"sort"
	"time"
)

// AppID is the path-like identifier of an app spec, e.g. "/ops/ingest".
type AppID string

type InstanceID string

type TaskID string

// AgentInfo describes where the cluster placed an instance.
type AgentInfo struct {
	Host    string `json:"host"`
	AgentID string `json:"agent_id"`
	Zone    string `json:"zone,omitempty"`
}

// Task is the smallest schedulable unit inside an instance.
type Task struct {
	ID        TaskID    `json:"id"`
	Ports     []int     `json:"ports,omitempty"`
	StagedAt  time.Time `json:"staged_at,omitempty"`
	StartedAt time.Time `json:"started_at,omitempty"`
	Version   string    `json:"version,omitempty"`
}

// Instance is one running deployment of an app. Tasks are keyed by task id.
type Instance struct {
	ID        InstanceID      `json:"id"`
	AppID     AppID           `json:"app_id"`
	Condition Condition       `json:"condition"`
	Agent     AgentInfo       `json:"agent"`
	Tasks     map[TaskID]Task `json:"tasks"`
}

// TaskIDs returns the instance's task ids in sorted order so that callers
// iterating an instance produce stable output.
func (i Instance) TaskIDs() []TaskID {
	ids := make([]TaskID, 0, len(i.Tasks))
	for id := range i.Tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

// InstancesBySpec is the instance tracker's snapshot of running instances,
// grouped by owning app.
type InstancesBySpec map[AppID][]Instance

// AppIDs returns the distinct app ids present in the snapshot, sorted.
func (s InstancesBySpec) AppIDs() []AppID {
	ids := make([]AppID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}
