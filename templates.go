package crudview

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path"
)

// templateName resolves the template path for an operation. An explicit
// CustomTemplates entry wins; otherwise the folder convention
// {TemplateFolder}/{operation}.html applies. Resolution is pure string work;
// whether the template exists is only discovered at render time.
func (v *View[T]) templateName(op Operation) string {
	if name, ok := v.cfg.CustomTemplates[string(op)]; ok {
		return name
	}
	return fmt.Sprintf("%s/%s.html", v.cfg.TemplateFolder, op)
}

// render executes the operation's template with the given context and writes
// it with the given status code. A missing or broken template is a server
// error for the current request.
func (v *View[T]) render(w http.ResponseWriter, op Operation, status int, data map[string]any) {
	name := v.templateName(op)

	tmpl, err := template.New(path.Base(name)).Funcs(v.funcs).ParseFS(v.tmplFS, name)
	if err != nil {
		http.Error(w, "failed to load template "+name+": "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Buffer so a mid-render failure does not leave a half-written page.
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		http.Error(w, "failed to render template "+name+": "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
