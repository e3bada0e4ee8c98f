package templater

import (
	"strings"
	"text/template"

	"mb/internal/ports"
)

var _ ports.Templater = (*TextTemplater)(nil)

// TextTemplater renders manifests with text/template. Unknown variables
// are an error so a typo in a manifest template cannot slip into output.
type TextTemplater struct{}

func ProvideTextTemplater() *TextTemplater {
	return &TextTemplater{}
}

func (t *TextTemplater) Render(templateText string, templateName string, values map[string]interface{}) (string, error) {
	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(templateText)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, values); err != nil {
		return "", err
	}

	return result.String(), nil
}
