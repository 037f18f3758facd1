package render

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/NoobyGains/claude-pulse/internal/errors"
	"github.com/NoobyGains/claude-pulse/internal/theme"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var frameTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// mockupData feeds the full-mockup template.
type mockupData struct {
	ThemeName  string
	TextColor  string
	BadgeColor string
	Status     template.HTML
	Mascot     template.HTML
	Model      string
	Index      int
	Total      int
}

// statusLineData feeds the bare status-line template.
type statusLineData struct {
	TextColor string
	Status    template.HTML
}

// ComposeMockup renders one full terminal-mockup frame: titlebar, welcome
// panel with the pixel mascot, static conversation text, the status line
// with all four bars, and the theme badge overlay. The result is a
// self-contained HTML document.
func ComposeMockup(f Frame) (string, error) {
	th, err := theme.Lookup(f.Theme)
	if err != nil {
		return "", err
	}

	status, err := statusLine(f, f.effectiveTheme(th), true, false)
	if err != nil {
		return "", err
	}

	data := mockupData{
		ThemeName:  th.Name,
		TextColor:  textColor,
		BadgeColor: th.Accent(),
		Status:     status,
		Mascot:     mascotHTML(),
		Model:      f.Model,
		Index:      f.Index,
		Total:      f.Total,
	}

	var buf bytes.Buffer
	if err := frameTemplates.ExecuteTemplate(&buf, "mockup.html.tmpl", data); err != nil {
		return "", errors.Wrap(err, "Failed to render mockup frame")
	}
	return buf.String(), nil
}

// ComposeStatusLine renders one bare status-line frame: the bar strip
// only, no terminal chrome, with optional trailing update badges.
func ComposeStatusLine(f Frame) (string, error) {
	th, err := theme.Lookup(f.Theme)
	if err != nil {
		return "", err
	}

	status, err := statusLine(f, f.effectiveTheme(th), false, true)
	if err != nil {
		return "", err
	}

	data := statusLineData{
		TextColor: textColor,
		Status:    status,
	}

	var buf bytes.Buffer
	if err := frameTemplates.ExecuteTemplate(&buf, "statusline.html.tmpl", data); err != nil {
		return "", errors.Wrap(err, "Failed to render status-line frame")
	}
	return buf.String(), nil
}
