package api

import (
	"time"

	"github.com/augi/marathon/marathon/healthiness"
	"github.com/augi/marathon/marathon/tasks"
)

// TaskList is the structured listing: the enriched tasks wrapped in a single
// collection field, nothing else.
type TaskList struct {
	Tasks []TaskResource `json:"tasks"`
}

type TaskResource struct {
	ID                 string                 `json:"id"`
	AppID              string                 `json:"appId"`
	Host               string                 `json:"host"`
	AgentID            string                 `json:"agentId"`
	Zone               string                 `json:"zone,omitempty"`
	Ports              []int                  `json:"ports"`
	ServicePorts       []int                  `json:"servicePorts"`
	StagedAt           string                 `json:"stagedAt,omitempty"`
	StartedAt          string                 `json:"startedAt,omitempty"`
	Version            string                 `json:"version,omitempty"`
	HealthCheckResults []HealthResultResource `json:"healthCheckResults"`
}

type HealthResultResource struct {
	InstanceID    string `json:"instanceId"`
	Alive         bool   `json:"alive"`
	FirstSuccess  string `json:"firstSuccess,omitempty"`
	LastSuccess   string `json:"lastSuccess,omitempty"`
	LastFailure   string `json:"lastFailure,omitempty"`
	FailureCause  string `json:"failureCause,omitempty"`
	ConsecutiveOK int    `json:"consecutiveSuccesses,omitempty"`
}

// AssembleTaskList projects the pipeline output onto the wire shape. No
// filtering happens here; that is all upstream.
func AssembleTaskList(enriched []tasks.EnrichedTask) TaskList {
	list := TaskList{Tasks: []TaskResource{}}

	for _, task := range enriched {
		ports := task.Task.Ports
		if ports == nil {
			ports = []int{}
		}

		list.Tasks = append(list.Tasks, TaskResource{
			ID:                 string(task.Task.ID),
			AppID:              string(task.AppID),
			Host:               task.Agent.Host,
			AgentID:            task.Agent.AgentID,
			Zone:               task.Agent.Zone,
			Ports:              ports,
			ServicePorts:       task.ServicePorts,
			StagedAt:           formatTime(task.Task.StagedAt),
			StartedAt:          formatTime(task.Task.StartedAt),
			Version:            task.Task.Version,
			HealthCheckResults: assembleResults(task.Results),
		})
	}

	return list
}

func assembleResults(results []healthiness.Result) []HealthResultResource {
	resources := []HealthResultResource{}
	for _, result := range results {
		resources = append(resources, HealthResultResource{
			InstanceID:    string(result.InstanceID),
			Alive:         result.Alive,
			FirstSuccess:  formatTime(result.FirstSuccess),
			LastSuccess:   formatTime(result.LastSuccess),
			LastFailure:   formatTime(result.LastFailure),
			FailureCause:  result.FailureCause,
			ConsecutiveOK: result.ConsecutiveOK,
		})
	}
	return resources
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
