package api_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/augi/marathon/marathon/api"
	"github.com/augi/marathon/marathon/healthiness"
	"github.com/augi/marathon/marathon/state"
	"github.com/augi/marathon/marathon/tasks"
)

var _ = Describe("AssembleTaskList", func() {
	It("projects enriched tasks onto the wire shape", func() {
		staged := time.Date(2026, 8, 30, 11, 58, 0, 0, time.UTC)
		started := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

		list := api.AssembleTaskList([]tasks.EnrichedTask{{
			AppID: "/a",
			Task: state.Task{
				ID:        "a.1.t1",
				Ports:     []int{31000},
				StagedAt:  staged,
				StartedAt: started,
				Version:   "2026-08-29T09:00:00Z",
			},
			Agent: state.AgentInfo{Host: "10.0.1.7", AgentID: "agent-1", Zone: "z1"},
			Results: []healthiness.Result{{
				InstanceID:    "a.1",
				Alive:         true,
				LastSuccess:   started,
				ConsecutiveOK: 12,
			}},
			ServicePorts: []int{80},
		}})

		Expect(list.Tasks).To(HaveLen(1))
		resource := list.Tasks[0]
		Expect(resource.ID).To(Equal("a.1.t1"))
		Expect(resource.AppID).To(Equal("/a"))
		Expect(resource.Host).To(Equal("10.0.1.7"))
		Expect(resource.AgentID).To(Equal("agent-1"))
		Expect(resource.Zone).To(Equal("z1"))
		Expect(resource.Ports).To(Equal([]int{31000}))
		Expect(resource.ServicePorts).To(Equal([]int{80}))
		Expect(resource.StagedAt).To(Equal("2026-08-30T11:58:00Z"))
		Expect(resource.StartedAt).To(Equal("2026-08-30T12:00:00Z"))
		Expect(resource.HealthCheckResults).To(HaveLen(1))
		Expect(resource.HealthCheckResults[0].Alive).To(BeTrue())
		Expect(resource.HealthCheckResults[0].ConsecutiveOK).To(Equal(12))
	})

	It("serializes an empty listing as an empty collection, not null", func() {
		serialized, err := json.Marshal(api.AssembleTaskList(nil))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(serialized)).To(Equal(`{"tasks":[]}`))
	})

	It("never serializes null port or result collections", func() {
		list := api.AssembleTaskList([]tasks.EnrichedTask{{
			AppID: "/a",
			Task:  state.Task{ID: "a.1.t1"},
		}})

		serialized, err := json.Marshal(list)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(serialized)).To(ContainSubstring(`"ports":[]`))
		Expect(string(serialized)).To(ContainSubstring(`"healthCheckResults":[]`))
	})

	It("omits unset timestamps instead of writing zero times", func() {
		list := api.AssembleTaskList([]tasks.EnrichedTask{{
			AppID: "/a",
			Task:  state.Task{ID: "a.1.t1"},
		}})

		serialized, err := json.Marshal(list)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(serialized)).NotTo(ContainSubstring("stagedAt"))
		Expect(string(serialized)).NotTo(ContainSubstring("startedAt"))
	})
})
