// Package handlers implements the HTTP layer of the redirect service: it
// translates resolver decisions into responses and serves the health check.
package handlers

import (
	"encoding/json"
	"html"
	"net/http"
	"strings"

	"static-redirect/internal/common/logging"
	"static-redirect/internal/rules"
)

// healthPath is served only when no redirect rule claims it; configured
// rules own the whole path space.
const healthPath = "/health"

// scriptRedirectPage is the document served for script redirects: a meta
// refresh plus a fallback link, instead of an HTTP 3xx. Used when a rule is
// marked js_only so HTTP-level clients do not follow the redirect.
const scriptRedirectPage = `<!DOCTYPE html><html><head><meta http-equiv="refresh" content="0;url={REDIRECT_URL}"><title>Redirecting...</title></head><body><p>If you are not redirected, <a href="{REDIRECT_URL}">click here</a>.</p></body></html>`

// Handlers serves requests against the compiled redirect index.
type Handlers struct {
	index  *rules.Index
	logger logging.Logger
}

// New creates the handler set for a compiled index.
func New(index *rules.Index, logger logging.Logger) *Handlers {
	return &Handlers{
		index:  index,
		logger: logger,
	}
}

// Redirect resolves the request path against the index and writes the
// response the decision calls for. It is the catch-all handler: unmatched
// paths produce a plain 404.
func (h *Handlers) Redirect(w http.ResponseWriter, r *http.Request) {
	decision := h.index.Resolve(r.URL.Path, r.URL.RawQuery)
	h.logger.Debug("Resolved request path",
		logging.String("path", r.URL.Path),
		logging.String("decision", decision.Kind.String()),
	)

	switch decision.Kind {
	case rules.DecisionHTTPRedirect:
		w.Header().Set("Location", decision.Target)
		w.WriteHeader(decision.Code)

	case rules.DecisionScriptRedirect:
		page := strings.ReplaceAll(scriptRedirectPage, "{REDIRECT_URL}", html.EscapeString(decision.Target))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			_, _ = w.Write([]byte(page))
		}

	default:
		if r.URL.Path == healthPath {
			h.Health(w, r)
			return
		}
		http.NotFound(w, r)
	}
}

// Health reports service status and the size of the compiled rule set.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"rules":  len(h.index.Rules()),
		"paths":  h.index.PathCount(),
	})
}
