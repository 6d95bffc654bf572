package ui

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// FuncMap returns the helpers available to the templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"fieldError": func(errs map[string]string, field string) string {
			return errs[field]
		},
	}
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// RenderInvoicesTable writes the two layouts of table to w
func RenderInvoicesTable(tmpl *template.Template, w io.Writer, table *InvoicesTable) error {
	return tmpl.ExecuteTemplate(w, "invoices_table", table)
}
