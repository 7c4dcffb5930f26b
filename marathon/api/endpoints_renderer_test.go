package api_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/augi/marathon/marathon/api"
	"github.com/augi/marathon/marathon/groups"
	"github.com/augi/marathon/marathon/state"
)

var _ = Describe("RenderEndpoints", func() {
	var (
		specs    map[state.AppID]*groups.AppSpec
		snapshot state.InstancesBySpec
		buffer   *bytes.Buffer
	)

	render := func() []string {
		Expect(api.RenderEndpoints(buffer, specs, snapshot)).To(Succeed())
		return strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	}

	BeforeEach(func() {
		buffer = &bytes.Buffer{}
		specs = map[state.AppID]*groups.AppSpec{}
		snapshot = state.InstancesBySpec{}
	})

	It("writes one line per app and service port with every task endpoint", func() {
		specs["/web"] = &groups.AppSpec{ID: "/web", ServicePorts: []int{80, 443}}
		snapshot["/web"] = []state.Instance{
			{
				ID:    "w.1",
				AppID: "/web",
				Agent: state.AgentInfo{Host: "10.0.1.7"},
				Tasks: map[state.TaskID]state.Task{
					"w.1.t1": {ID: "w.1.t1", Ports: []int{31000, 31001}},
				},
			},
			{
				ID:    "w.2",
				AppID: "/web",
				Agent: state.AgentInfo{Host: "10.0.1.8"},
				Tasks: map[state.TaskID]state.Task{
					"w.2.t1": {ID: "w.2.t1", Ports: []int{31200, 31201}},
				},
			},
		}

		lines := render()
		Expect(lines).To(HaveLen(2))
		Expect(lines[0]).To(MatchRegexp(`^/web\s+80\s+10\.0\.1\.7:31000 10\.0\.1\.8:31200$`))
		Expect(lines[1]).To(MatchRegexp(`^/web\s+443\s+10\.0\.1\.7:31001 10\.0\.1\.8:31201$`))
	})

	It("lists only hosts for an app without service ports", func() {
		specs["/worker"] = &groups.AppSpec{ID: "/worker"}
		snapshot["/worker"] = []state.Instance{
			{ID: "k.1", AppID: "/worker", Agent: state.AgentInfo{Host: "10.0.2.1"}},
			{ID: "k.2", AppID: "/worker", Agent: state.AgentInfo{Host: "10.0.2.2"}},
		}

		lines := render()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(MatchRegexp(`^/worker\s+10\.0\.2\.1 10\.0\.2\.2$`))
	})

	It("falls back to the bare host when a task exposes fewer ports than the app declares", func() {
		specs["/web"] = &groups.AppSpec{ID: "/web", ServicePorts: []int{80, 443}}
		snapshot["/web"] = []state.Instance{{
			ID:    "w.1",
			AppID: "/web",
			Agent: state.AgentInfo{Host: "10.0.1.7"},
			Tasks: map[state.TaskID]state.Task{
				"w.1.t1": {ID: "w.1.t1", Ports: []int{31000}},
			},
		}}

		lines := render()
		Expect(lines[0]).To(ContainSubstring("10.0.1.7:31000"))
		Expect(lines[1]).To(MatchRegexp(`^/web\s+443\s+10\.0\.1\.7$`))
	})

	It("orders apps and tasks deterministically", func() {
		specs["/b"] = &groups.AppSpec{ID: "/b", ServicePorts: []int{80}}
		specs["/a"] = &groups.AppSpec{ID: "/a", ServicePorts: []int{80}}
		snapshot["/a"] = []state.Instance{{
			ID:    "a.1",
			AppID: "/a",
			Agent: state.AgentInfo{Host: "10.0.1.1"},
			Tasks: map[state.TaskID]state.Task{
				"a.1.t2": {ID: "a.1.t2", Ports: []int{31001}},
				"a.1.t1": {ID: "a.1.t1", Ports: []int{31000}},
			},
		}}
		snapshot["/b"] = []state.Instance{{
			ID:    "b.1",
			AppID: "/b",
			Agent: state.AgentInfo{Host: "10.0.1.2"},
			Tasks: map[state.TaskID]state.Task{
				"b.1.t1": {ID: "b.1.t1", Ports: []int{31100}},
			},
		}}

		lines := render()
		Expect(lines[0]).To(HavePrefix("/a"))
		Expect(lines[0]).To(ContainSubstring("10.0.1.1:31000 10.0.1.1:31001"))
		Expect(lines[1]).To(HavePrefix("/b"))
	})

	It("skips snapshot apps absent from the permitted specs", func() {
		specs["/a"] = &groups.AppSpec{ID: "/a"}
		snapshot["/a"] = []state.Instance{{ID: "a.1", AppID: "/a", Agent: state.AgentInfo{Host: "10.0.1.1"}}}
		snapshot["/hidden"] = []state.Instance{{ID: "h.1", AppID: "/hidden", Agent: state.AgentInfo{Host: "10.0.9.9"}}}

		Expect(render()).To(HaveLen(1))
		Expect(buffer.String()).NotTo(ContainSubstring("/hidden"))
	})

	It("writes nothing for an empty permitted view", func() {
		Expect(api.RenderEndpoints(buffer, specs, snapshot)).To(Succeed())
		Expect(buffer.String()).To(BeEmpty())
	})
})
