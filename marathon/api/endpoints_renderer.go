package api

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/augi/marathon/marathon/groups"
	"github.com/augi/marathon/marathon/state"
)

// RenderEndpoints writes the plain-text summary: one line per app and
// service port, listing every task endpoint hosting that port. It takes the
// registry view already restricted to apps the caller may see plus the full
// snapshot, and only renders instances belonging to the permitted apps.
func RenderEndpoints(w io.Writer, specs map[state.AppID]*groups.AppSpec, snapshot state.InstancesBySpec) error {
	appIDs := make([]state.AppID, 0, len(specs))
	for appID := range specs {
		appIDs = append(appIDs, appID)
	}
	sort.Slice(appIDs, func(a, b int) bool { return appIDs[a] < appIDs[b] })

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	for _, appID := range appIDs {
		spec := specs[appID]
		instances := snapshot[appID]

		if len(spec.ServicePorts) == 0 {
			fmt.Fprintf(tw, "%s\t\t%s\n", appID, strings.Join(hosts(instances), " ")) //nolint:errcheck
			continue
		}

		for portIndex, servicePort := range spec.ServicePorts {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", appID, servicePort, strings.Join(endpoints(instances, portIndex), " ")) //nolint:errcheck
		}
	}

	return tw.Flush()
}

func hosts(instances []state.Instance) []string {
	var out []string
	for _, instance := range instances {
		out = append(out, instance.Agent.Host)
	}
	return out
}

func endpoints(instances []state.Instance, portIndex int) []string {
	var out []string
	for _, instance := range instances {
		for _, taskID := range instance.TaskIDs() {
			task := instance.Tasks[taskID]
			if portIndex < len(task.Ports) {
				out = append(out, fmt.Sprintf("%s:%d", instance.Agent.Host, task.Ports[portIndex]))
			} else {
				out = append(out, instance.Agent.Host)
			}
		}
	}
	return out
}
