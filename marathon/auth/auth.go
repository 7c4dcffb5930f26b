package auth

import (
	"os"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"gopkg.in/yaml.v3"

	"github.com/augi/marathon/marathon/state"
)

// Identity is the authenticated caller. How it is established (peer
// certificate, proxy header) is the authenticator's business; the pipeline
// only ever compares it against policy.
type Identity string

//go:generate counterfeiter . Authorizer

// Authorizer is the injected view-authorization predicate. Denial is silent:
// the caller's listing simply omits the app.
type Authorizer interface {
	CanView(identity Identity, appID state.AppID) bool
}

// Policy is the on-disk ACL. Each rule grants an identity visibility over
// every app whose path-like id sits under one of the listed prefixes; "/"
// grants everything.
type Policy struct {
	Viewers []PolicyRule `yaml:"viewers"`
}

type PolicyRule struct {
	Identity Identity `yaml:"identity"`
	Paths    []string `yaml:"paths"`
}

type policyAuthorizer struct {
	prefixes map[Identity][]string
}

func NewPolicyAuthorizer(policy Policy) Authorizer {
	prefixes := map[Identity][]string{}
	for _, rule := range policy.Viewers {
		prefixes[rule.Identity] = append(prefixes[rule.Identity], rule.Paths...)
	}
	return &policyAuthorizer{prefixes: prefixes}
}

func NewPolicyAuthorizerFromFile(path string) (Authorizer, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, bosherr.WrapError(err, "Reading ACL policy")
	}

	var policy Policy
	if err := yaml.Unmarshal(contents, &policy); err != nil {
		return nil, bosherr.WrapError(err, "Parsing ACL policy")
	}

	return NewPolicyAuthorizer(policy), nil
}

func (a *policyAuthorizer) CanView(identity Identity, appID state.AppID) bool {
	for _, prefix := range a.prefixes[identity] {
		if underPath(string(appID), prefix) {
			return true
		}
	}
	return false
}

// underPath matches on whole path segments: "/a" covers "/a" and "/a/b" but
// not "/ab".
func underPath(appID, prefix string) bool {
	if prefix == "/" {
		return true
	}
	prefix = strings.TrimSuffix(prefix, "/")
	return appID == prefix || strings.HasPrefix(appID, prefix+"/")
}
