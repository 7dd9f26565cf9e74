package http

import (
	"embed"
	"html/template"
	"net/http"

	"phishguard/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// pageData is the data passed to every HTML template.
type pageData struct {
	// User is the authenticated login, empty on public pages.
	User string
	// Error is an inline error message re-rendered on the same page.
	Error string
	// Result is the classification label shown after a predict.
	Result string
	// Features is the ordered feature-name list driving the predict form.
	Features []string
	// ChartURL points at the generated chart image.
	ChartURL string
}

// renderPage executes the named template. Template failures surface as a
// bare 500: at that point half a page may already be written.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
