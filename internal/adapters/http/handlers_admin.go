package web

import (
	"net/http"
	"strconv"
	"time"

	"clubadmin/internal/application/projections"
	"clubadmin/internal/domain/audit"
)

// handleAuditLog renders the panel's own audit trail (GET /admin/audit).
// POST: Renders events newest first, optionally filtered by category and actor
func handleAuditLog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := projections.GetAuditLogQuery{
		Category: q.Get("category"),
		Actor:    q.Get("actor"),
	}
	if l, err := strconv.Atoi(q.Get("limit")); err == nil {
		query.Limit = l
	}

	data := map[string]any{
		"Title":      "Audit Trail",
		"Categories": audit.Categories,
		"Filter":     query,
		"Events":     []audit.Event{},
	}
	if auditEvents == nil {
		addToast(data, toastInfo, "Audit log is not configured")
		renderPage(w, r, http.StatusOK, "audit.html", data)
		return
	}

	events, err := projections.QueryGetAuditLog(r.Context(), query, projections.GetAuditLogDeps{Store: auditEvents})
	if err != nil {
		internalError(w, err)
		return
	}
	data["Events"] = events
	renderPage(w, r, http.StatusOK, "audit.html", data)
}

// handlePerf renders request and upstream latency over the last hour (GET /admin/perf).
func handlePerf(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Performance"}
	if perfCollector == nil {
		addToast(data, toastInfo, "Performance collection is disabled")
		renderPage(w, r, http.StatusOK, "perf.html", data)
		return
	}
	data["Snapshot"] = perfCollector.Snapshot(time.Now().Add(-time.Hour), 10)
	renderPage(w, r, http.StatusOK, "perf.html", data)
}
