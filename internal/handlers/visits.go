package handlers

import (
	"net/http"

	"github.com/crucial707/weblab/internal/metrics"
)

// Visits increments the per-session visit counter and shows the new value.
// Different sessions never see each other's count.
func (h *Handlers) Visits(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Load(r)
	count := sess.RecordVisit()
	metrics.VisitsTotal.Inc()

	h.render(w, r, sess, "visits.html", map[string]interface{}{
		"Title":  "Visit counter",
		"Visits": count,
	})
}
