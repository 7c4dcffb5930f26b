package tasks_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/augi/marathon/marathon/auth"
	"github.com/augi/marathon/marathon/auth/authfakes"
	"github.com/augi/marathon/marathon/groups"
	"github.com/augi/marathon/marathon/healthiness"
	"github.com/augi/marathon/marathon/healthiness/healthinessfakes"
	"github.com/augi/marathon/marathon/state"
	"github.com/augi/marathon/marathon/tasks"
	"github.com/augi/marathon/marathon/tasks/tasksfakes"
)

var _ = Describe("Lister", func() {
	var (
		fakeTracker    *tasksfakes.FakeInstanceTracker
		fakeRegistry   *tasksfakes.FakeGroupRegistry
		fakeHealth     *healthinessfakes.FakeStatusLister
		fakeAuthorizer *authfakes.FakeAuthorizer
		lister         *tasks.Lister
	)

	BeforeEach(func() {
		fakeTracker = &tasksfakes.FakeInstanceTracker{}
		fakeRegistry = &tasksfakes.FakeGroupRegistry{}
		fakeHealth = &healthinessfakes.FakeStatusLister{}
		fakeAuthorizer = &authfakes.FakeAuthorizer{}

		fakeTracker.InstancesBySpecReturns(state.InstancesBySpec{
			"/a": []state.Instance{{
				ID:        "a.1",
				AppID:     "/a",
				Condition: state.ConditionRunning,
				Tasks: map[state.TaskID]state.Task{
					"a.1.t1": {ID: "a.1.t1"},
				},
			}},
		}, nil)
		fakeRegistry.AppsReturns(map[state.AppID]*groups.AppSpec{
			"/a": {ID: "/a", ServicePorts: []int{80}},
		}, nil)
		fakeHealth.StatusesReturns(map[state.InstanceID][]healthiness.Result{
			"a.1": {{InstanceID: "a.1", Alive: true}},
		}, nil)
		fakeAuthorizer.CanViewReturns(true)

		logger := boshlog.NewLogger(boshlog.LevelNone)
		lister = tasks.NewLister(fakeTracker, fakeRegistry, fakeHealth, fakeAuthorizer, logger)
	})

	It("joins the snapshot, registry, and health into enriched tasks", func() {
		listing, err := lister.List(context.Background(), "alice", state.ConditionSet{})

		Expect(err).NotTo(HaveOccurred())
		Expect(listing.Tasks).To(HaveLen(1))
		Expect(listing.Tasks[0].Task.ID).To(Equal(state.TaskID("a.1.t1")))
		Expect(listing.Tasks[0].ServicePorts).To(Equal([]int{80}))
		Expect(listing.Tasks[0].Results).To(HaveLen(1))
		Expect(listing.Snapshot).To(HaveKey(state.AppID("/a")))
	})

	It("asks the registry about exactly the apps in the snapshot", func() {
		_, err := lister.List(context.Background(), "alice", state.ConditionSet{})
		Expect(err).NotTo(HaveOccurred())

		Expect(fakeRegistry.AppsCallCount()).To(Equal(1))
		_, ids := fakeRegistry.AppsArgsForCall(0)
		Expect(ids).To(Equal([]state.AppID{"/a"}))
	})

	It("checks authorization with the caller's identity", func() {
		_, err := lister.List(context.Background(), "alice", state.ConditionSet{})
		Expect(err).NotTo(HaveOccurred())

		Expect(fakeAuthorizer.CanViewCallCount()).To(BeNumerically(">", 0))
		identity, appID := fakeAuthorizer.CanViewArgsForCall(0)
		Expect(identity).To(Equal(auth.Identity("alice")))
		Expect(appID).To(Equal(state.AppID("/a")))
	})

	It("restricts Specs to the apps the caller may view", func() {
		fakeAuthorizer.CanViewReturns(false)

		listing, err := lister.List(context.Background(), "bob", state.ConditionSet{})

		Expect(err).NotTo(HaveOccurred())
		Expect(listing.Tasks).To(BeEmpty())
		Expect(listing.Specs).To(BeEmpty())
	})

	It("fails when the instance snapshot cannot be fetched", func() {
		fakeTracker.InstancesBySpecReturns(nil, errors.New("tracker down"))

		_, err := lister.List(context.Background(), "alice", state.ConditionSet{})

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Fetching instance snapshot"))
		Expect(err.Error()).To(ContainSubstring("tracker down"))
		Expect(fakeRegistry.AppsCallCount()).To(BeZero())
		Expect(fakeHealth.StatusesCallCount()).To(BeZero())
	})

	It("fails when the registry lookup fails", func() {
		fakeRegistry.AppsReturns(nil, errors.New("registry down"))

		_, err := lister.List(context.Background(), "alice", state.ConditionSet{})

		Expect(err).To(MatchError(ContainSubstring("registry down")))
	})

	It("fails when the health fan-out fails", func() {
		fakeHealth.StatusesReturns(nil, errors.New("health down"))

		_, err := lister.List(context.Background(), "alice", state.ConditionSet{})

		Expect(err).To(MatchError(ContainSubstring("health down")))
	})

	It("applies the condition filter", func() {
		fakeTracker.InstancesBySpecReturns(state.InstancesBySpec{
			"/a": []state.Instance{
				{
					ID:        "a.1",
					AppID:     "/a",
					Condition: state.ConditionRunning,
					Tasks:     map[state.TaskID]state.Task{"a.1.t1": {ID: "a.1.t1"}},
				},
				{
					ID:        "a.2",
					AppID:     "/a",
					Condition: state.ConditionStaging,
					Tasks:     map[state.TaskID]state.Task{"a.2.t1": {ID: "a.2.t1"}},
				},
			},
		}, nil)

		listing, err := lister.List(context.Background(), "alice", state.ParseConditions([]string{"staging"}))

		Expect(err).NotTo(HaveOccurred())
		Expect(listing.Tasks).To(HaveLen(1))
		Expect(listing.Tasks[0].Task.ID).To(Equal(state.TaskID("a.2.t1")))
	})
})
