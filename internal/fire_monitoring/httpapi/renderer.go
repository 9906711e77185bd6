package httpapi

import (
	"bytes"
	"embed"
	"encoding/json"
	"firewatch-server/internal/fire_monitoring/usecases"
	"fmt"
	"html/template"
)

//go:embed templates/dashboard.html
var templates embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{"toJSON": toJSON}).
		ParseFS(templates, "templates/dashboard.html"),
)

// toJSON embeds a value as a JavaScript literal. encoding/json escapes <, > and &,
// so the result is safe inside a script element.
func toJSON(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func renderDashboardHTML(dashboard usecases.Dashboard) ([]byte, error) {
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, dashboard); err != nil {
		return nil, fmt.Errorf("executing dashboard template: %w", err)
	}
	return buf.Bytes(), nil
}
