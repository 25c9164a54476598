package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/MKhiriev/go-material-keeper/internal/accounting"
	"github.com/MKhiriev/go-material-keeper/internal/app"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageData is the single view model shared by all pages.
type pageData struct {
	Title string

	// Login is the signed-in user, empty on the login and register pages.
	Login string

	// Username pre-fills the login and register forms after a failed attempt.
	Username string

	Error string

	// Form echoes the submitted values back after a rejected submission.
	Form models.MaterialForm

	Submission *models.Submission

	History []historyRow

	Threshold int
}

// historyRow pairs a stored record with the report recomputed from it.
type historyRow struct {
	Record   models.MaterialRecord
	Report   models.Report
	Computed bool
}

var templateFuncs = template.FuncMap{
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("2006-01-02 15:04:05")
	},
}

func parseTemplates() (*template.Template, error) {
	return template.New("pages").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
}

// render executes the named page into a buffer first, so a template failure
// still produces a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	data.Threshold = accounting.LowMaterialThreshold

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.render").Str("template", name).Msg("error rendering page")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
