// Package rules implements the redirect rule model: parsing named rule
// definitions out of the SR_REDIR_* environment namespace, validating them,
// and compiling them into an immutable path lookup index that resolves
// incoming request paths to redirect decisions.
//
// Rules are declared as groups of environment variables sharing a name:
//
//	SR_REDIR_<name>                  = "/path1,/path2"   (source paths)
//	SR_REDIR_<name>__TARGET          = "https://example.com"
//	SR_REDIR_<name>__CODE            = "301"              (optional, default 307)
//	SR_REDIR_<name>__JS_ONLY         = "true"             (optional, default false)
//	SR_REDIR_<name>__PRESERVE_PARAMS = "true"             (optional, default false)
//
// Keys starting with SR_REDIR__ (double underscore directly after the
// prefix) are reserved for server-level settings and never define rules.
package rules

import (
	"net/http"
	"strings"
)

// EnvPrefix is the environment namespace all rule keys live under.
const EnvPrefix = "SR_REDIR_"

// serverPrefix marks reserved server-level keys such as SR_REDIR__HOST.
const serverPrefix = EnvPrefix + "_"

// optionSeparator splits a rule name from its option suffix.
const optionSeparator = "__"

// Option suffixes recognized on a rule key.
const (
	optionTarget         = "TARGET"
	optionCode           = "CODE"
	optionJSOnly         = "JS_ONLY"
	optionPreserveParams = "PRESERVE_PARAMS"
)

// DefaultCode is the redirect status used when a rule omits __CODE.
const DefaultCode = http.StatusTemporaryRedirect

// redirectCodes is the set of HTTP status codes a rule may redirect with.
var redirectCodes = map[int]bool{
	http.StatusMovedPermanently:  true, // 301
	http.StatusFound:             true, // 302
	http.StatusSeeOther:          true, // 303
	http.StatusTemporaryRedirect: true, // 307
	http.StatusPermanentRedirect: true, // 308
}

// Rule is one named redirect definition. The name is only used for
// diagnostics and uniqueness enforcement; it is never exposed to clients.
type Rule struct {
	Name           string
	Sources        []string
	Target         string
	Code           int
	JSOnly         bool
	PreserveParams bool
}

// parseRuleBool accepts the documented literal forms "true" and "false",
// case-insensitively. Anything else is a configuration error; forms like
// "1" or "t" are deliberately not recognized.
func parseRuleBool(value string) (bool, error) {
	if strings.EqualFold(value, "true") {
		return true, nil
	}
	if strings.EqualFold(value, "false") {
		return false, nil
	}
	return false, ErrInvalidBool
}
