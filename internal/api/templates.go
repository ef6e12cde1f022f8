package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/phrazzld/mocksy/internal/authform"
	"github.com/phrazzld/mocksy/internal/domain"
	"github.com/phrazzld/mocksy/internal/platform/logger"
	"github.com/phrazzld/mocksy/internal/service/flash"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// fieldView is one rendered input: the data the field template needs to
// draw a bound input and its inline error.
type fieldView struct {
	Name        string
	Label       string
	Placeholder string
	Type        string
	Value       string
	Error       string
}

// pageData is the view model for both the auth pages and the home page.
// Mode is empty on the home page.
type pageData struct {
	Title        string
	Mode         domain.Mode
	Action       string
	Fields       []fieldView
	SubmitLabel  string
	SwitchPrompt string
	SwitchPath   string
	SwitchLabel  string
	Flash        *flash.Flash
}

// newAuthPage builds the view model for mode. Password inputs are never
// refilled.
func newAuthPage(mode domain.Mode, values domain.FormValues, fieldErrors map[string]string, f *flash.Flash) pageData {
	schema := authform.SelectSchema(mode)
	switchPath, switchLabel := mode.SwitchLink()

	fields := make([]fieldView, 0, len(schema.Fields()))
	for _, rule := range schema.Fields() {
		fv := fieldView{
			Name:        rule.Field,
			Label:       rule.Label,
			Placeholder: rule.Placeholder,
			Type:        rule.InputType,
			Error:       fieldErrors[rule.Field],
		}
		switch rule.Field {
		case authform.FieldName:
			fv.Value = values.Name
		case authform.FieldEmail:
			fv.Value = values.Email
		}
		fields = append(fields, fv)
	}

	return pageData{
		Title:        mode.SubmitLabel(),
		Mode:         mode,
		Action:       mode.Path(),
		Fields:       fields,
		SubmitLabel:  mode.SubmitLabel(),
		SwitchPrompt: mode.SwitchPrompt(),
		SwitchPath:   switchPath,
		SwitchLabel:  switchLabel,
		Flash:        f,
	}
}

// render executes the named template into a buffer first so that a template
// failure becomes a clean 500 instead of a half-written page.
func (h *AuthFormHandler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, "auth", data); err != nil {
		logger.FromContext(r.Context()).Error("failed to render page", "error", err, "mode", data.Mode)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Error("failed to write page", "error", err)
	}
}
