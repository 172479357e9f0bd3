package rules

import "strings"

// DecisionKind describes how the HTTP layer should respond to a request.
type DecisionKind int

const (
	// DecisionNotFound means no rule claims the request path
	DecisionNotFound DecisionKind = iota
	// DecisionHTTPRedirect means respond with Target in a Location header and status Code
	DecisionHTTPRedirect
	// DecisionScriptRedirect means respond 200 with a page whose script navigates to Target
	DecisionScriptRedirect
)

// String returns the string representation of a decision kind
func (k DecisionKind) String() string {
	switch k {
	case DecisionNotFound:
		return "not_found"
	case DecisionHTTPRedirect:
		return "http_redirect"
	case DecisionScriptRedirect:
		return "script_redirect"
	default:
		return "unknown"
	}
}

// Decision is the outcome of resolving one request against the index.
// Target is empty and Code is zero for NotFound decisions; Code is zero for
// script redirects, which are always served with status 200.
type Decision struct {
	Kind   DecisionKind
	Target string
	Code   int
}

// Index is the immutable path lookup structure built by Compile. It is
// constructed once at startup and read by every request handler afterwards,
// so lookups need no locking.
type Index struct {
	byPath map[string]*Rule
	rules  []*Rule // sorted by name
}

// Rules returns the compiled rules sorted by name.
func (ix *Index) Rules() []*Rule {
	return ix.rules
}

// PathCount returns the number of source paths across all rules.
func (ix *Index) PathCount() int {
	return len(ix.byPath)
}

// Resolve looks up the request path and produces the redirect decision.
// Matching is exact: no trailing-slash collapsing or other normalization is
// applied, so "/test" and "/test/" are distinct paths. An unmatched path is
// a normal NotFound outcome, not an error.
//
// rawQuery is the request's query string without the leading '?'. When the
// matched rule preserves params and the query is non-empty, it is appended
// to the target verbatim, with '?' or '&' chosen by whether the target
// already contains a query component.
func (ix *Index) Resolve(path, rawQuery string) Decision {
	rule, ok := ix.byPath[path]
	if !ok {
		return Decision{Kind: DecisionNotFound}
	}

	target := rule.Target
	if rule.PreserveParams && rawQuery != "" {
		if strings.Contains(target, "?") {
			target += "&" + rawQuery
		} else {
			target += "?" + rawQuery
		}
	}

	if rule.JSOnly {
		return Decision{Kind: DecisionScriptRedirect, Target: target}
	}
	return Decision{Kind: DecisionHTTPRedirect, Target: target, Code: rule.Code}
}
