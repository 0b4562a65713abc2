// Package gate keeps locked applicants out of the application while they
// wait for their unlock date.
package gate

import (
	"strings"

	"naturalize/pkg/platform/strutil"
)

// Class is how a path is treated by the gate.
type Class string

const (
	ClassUnrestricted  Class = "unrestricted"
	ClassAlwaysAllowed Class = "always_allowed"
	ClassRestricted    Class = "restricted"
)

// Action is what the gate does with a request.
type Action string

const (
	ActionAllow    Action = "allow"
	ActionRedirect Action = "redirect"
)

// Decision is the outcome for one path.
type Decision struct {
	Action     Action `json:"action"`
	Class      Class  `json:"class"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// Policy lists path prefixes. AlwaysAllowed wins over Restricted.
type Policy struct {
	Restricted    []string
	AlwaysAllowed []string
	RedirectTo    string
}

// DefaultPolicy restricts the application and sends locked applicants to the
// waiting room. The eligibility pages stay reachable.
func DefaultPolicy() Policy {
	return Policy{
		Restricted:    []string{"/application/"},
		AlwaysAllowed: []string{"/purgatory/", "/application/eligibility/"},
		RedirectTo:    "/purgatory/",
	}
}

// NewPolicy normalises the prefix lists, falling back to the default redirect.
func NewPolicy(restricted, alwaysAllowed []string, redirectTo string) Policy {
	if redirectTo == "" {
		redirectTo = DefaultPolicy().RedirectTo
	}
	return Policy{
		Restricted:    strutil.PathPrefixes(restricted),
		AlwaysAllowed: strutil.PathPrefixes(alwaysAllowed),
		RedirectTo:    redirectTo,
	}
}

// Classify matches the path (query string ignored) against the prefix lists.
func (p Policy) Classify(path string) Class {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if hasAnyPrefix(path, p.AlwaysAllowed) {
		return ClassAlwaysAllowed
	}
	if hasAnyPrefix(path, p.Restricted) {
		return ClassRestricted
	}
	return ClassUnrestricted
}

// Decide redirects a locked applicant away from a restricted path and allows
// everything else.
func (p Policy) Decide(path string, locked bool) Decision {
	class := p.Classify(path)
	if class == ClassRestricted && locked {
		return Decision{Action: ActionRedirect, Class: class, RedirectTo: p.RedirectTo}
	}
	return Decision{Action: ActionAllow, Class: class}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
