// Package diagnostic carries recoverable data problems back to callers
// alongside a degraded result, instead of failing the request.
package diagnostic

import "fmt"

// Kind classifies a diagnostic.
type Kind string

const (
	// KindParseError: a date (or number) matched none of the accepted formats.
	KindParseError Kind = "parse_error"
	// KindMissingReference: a record points at a parent that does not exist.
	KindMissingReference Kind = "missing_reference"
	// KindInconsistentState: stored data violates an invariant, e.g. an end
	// date before its start date.
	KindInconsistentState Kind = "inconsistent_state"
)

// Diagnostic describes one problem found while computing a result.
type Diagnostic struct {
	Kind Kind `json:"kind"`
	// Subject is the record or key the problem was found on.
	Subject string `json:"subject,omitempty"`
	Detail  string `json:"detail"`
}

func (d Diagnostic) String() string {
	if d.Subject == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Detail)
	}
	return fmt.Sprintf("%s [%s]: %s", d.Kind, d.Subject, d.Detail)
}

func ParseError(subject, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: KindParseError, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}

func MissingReference(subject, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: KindMissingReference, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}

func InconsistentState(subject, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: KindInconsistentState, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}

// List accumulates diagnostics.
type List []Diagnostic

func (l *List) Add(d Diagnostic) {
	*l = append(*l, d)
}

// Count returns how many diagnostics have the given kind.
func (l List) Count(kind Kind) int {
	n := 0
	for _, d := range l {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
