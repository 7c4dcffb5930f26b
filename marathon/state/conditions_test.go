package state_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/augi/marathon/marathon/state"
)

var _ = Describe("ParseConditions", func() {
	It("recognizes running and staging regardless of case", func() {
		set := state.ParseConditions([]string{"Running", "STAGING"})
		Expect(set).To(HaveLen(2))
		Expect(set).To(HaveKey(state.ConditionRunning))
		Expect(set).To(HaveKey(state.ConditionStaging))
	})

	It("silently drops unrecognized strings", func() {
		set := state.ParseConditions([]string{"banana", "running", "finished"})
		Expect(set).To(HaveLen(1))
		Expect(set).To(HaveKey(state.ConditionRunning))
	})

	It("deduplicates repeated values", func() {
		set := state.ParseConditions([]string{"running", "running", "RUNNING"})
		Expect(set).To(HaveLen(1))
	})

	It("returns an empty set for no input", func() {
		Expect(state.ParseConditions(nil)).To(BeEmpty())
	})

	It("returns an empty set when nothing matched", func() {
		Expect(state.ParseConditions([]string{"banana", "killed"})).To(BeEmpty())
	})
})

var _ = Describe("ConditionSet", func() {
	Context("when the set is empty", func() {
		It("matches every condition", func() {
			set := state.ParseConditions(nil)
			Expect(set.Matches(state.ConditionRunning)).To(BeTrue())
			Expect(set.Matches(state.ConditionStaging)).To(BeTrue())
			Expect(set.Matches(state.ConditionFailed)).To(BeTrue())
		})
	})

	Context("when the set holds conditions", func() {
		It("matches members only", func() {
			set := state.ParseConditions([]string{"running"})
			Expect(set.Matches(state.ConditionRunning)).To(BeTrue())
			Expect(set.Matches(state.ConditionStaging)).To(BeFalse())
		})
	})
})

var _ = Describe("Instance", func() {
	It("returns task ids in sorted order", func() {
		instance := state.Instance{
			Tasks: map[state.TaskID]state.Task{
				"c": {ID: "c"},
				"a": {ID: "a"},
				"b": {ID: "b"},
			},
		}
		Expect(instance.TaskIDs()).To(Equal([]state.TaskID{"a", "b", "c"}))
	})
})

var _ = Describe("InstancesBySpec", func() {
	It("returns distinct app ids in sorted order", func() {
		snapshot := state.InstancesBySpec{
			"/b": nil,
			"/a": nil,
			"/c": nil,
		}
		Expect(snapshot.AppIDs()).To(Equal([]state.AppID{"/a", "/b", "/c"}))
	})
})
