package groups

import (
	"github.com/augi/marathon/marathon/state"
)

// AppSpec is the registry's definition of a deployable app. A spec can be
// missing for an app id that still has live instances while a removal or
// migration is in flight; such apps are excluded from listings.
type AppSpec struct {
	ID           state.AppID       `json:"id"`
	ServicePorts []int             `json:"service_ports,omitempty"`
	Labels       map[string]string `json:"labels,omitempty"`
	Version      string            `json:"version,omitempty"`
}
