package http

import (
	"net/http"

	"phishguard/internal/chart"
	"phishguard/internal/logger"
)

// chartPage regenerates the pie chart for the session's last prediction and
// renders a page embedding it. Without a stored prediction the client is
// sent back to the predict form.
func (h *Handler) chartPage(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	last, err := sess.LastResult()
	if err != nil {
		http.Redirect(w, r, "/predict", http.StatusFound)
		return
	}

	if err := h.renderer.Render(last); err != nil {
		logger.FromRequest(r).Err(err).Msg("chart rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, "chart.html", pageData{
		User:     sess.User,
		Result:   chart.LabelText(last),
		ChartURL: "/static/" + chart.ResultFileName,
	})
}
