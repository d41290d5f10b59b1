package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"stocktrader/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{"usd": USD}).ParseFS(templateFS, "templates/*.html"),
)

// USD formats a decimal amount as a dollar string with thousands
// separators, e.g. 10000 -> "$10,000.00".
func USD(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}

	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// Render writes the named template with the given status code.
func Render(w http.ResponseWriter, name string, data any, code int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("failed to render template", "template", name, "error", err)
	}
}

// ApologyData is the data for the generic error page.
type ApologyData struct {
	Code    int
	Message string
}

// Apology renders the generic error page. Every failure, whatever its
// cause, goes through here so internals never reach the user.
func Apology(w http.ResponseWriter, message string, code int) {
	Render(w, "apology.html", ApologyData{Code: code, Message: message}, code)
}
