// Package docs generates a human-readable reference for the metadata
// schema: a Markdown document describing every recognized field, and an
// HTML rendering of the same document.
package docs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/eidosian/metaforge/internal/schema"
	"github.com/yuin/goldmark"
)

// Generator builds the schema reference documentation.
type Generator struct {
	def *schema.SchemaDefinition
}

func NewGenerator(def *schema.SchemaDefinition) *Generator {
	return &Generator{def: def}
}

// Generate writes schema.md and schema.html to the output directory.
func (g *Generator) Generate(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", outputDir, err)
	}

	md, err := g.Markdown()
	if err != nil {
		return err
	}
	mdPath := filepath.Join(outputDir, "schema.md")
	if err := os.WriteFile(mdPath, md, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", mdPath, err)
	}

	html, err := renderHTML(md)
	if err != nil {
		return err
	}
	htmlPath := filepath.Join(outputDir, "schema.html")
	if err := os.WriteFile(htmlPath, html, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", htmlPath, err)
	}
	return nil
}

// Markdown renders the schema reference as Markdown.
func (g *Generator) Markdown() ([]byte, error) {
	var buf bytes.Buffer
	if err := schemaTemplate.Execute(&buf, g.def); err != nil {
		return nil, fmt.Errorf("failed to execute schema template: %w", err)
	}
	return buf.Bytes(), nil
}

// renderHTML converts the Markdown reference to an HTML fragment.
func renderHTML(md []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(md, &buf); err != nil {
		return nil, fmt.Errorf("failed to process markdown: %v", err)
	}
	return buf.Bytes(), nil
}

// join renders a string list as a comma-separated line.
func join(xs []string) string {
	return strings.Join(xs, ", ")
}

var schemaTemplate = template.Must(template.New("schema").Funcs(template.FuncMap{
	"join": join,
}).Parse(`<!-- Auto-generated by metaforge gen-docs. DO NOT EDIT. -->
# {{ .SchemaEntity }}

{{ .SchemaPurpose }}.

{{ .SchemaContext }}.

**Version**: {{ .SchemaVersion }} ({{ .SchemaIdentifier }})

## Fields

{{ range .SchemaFields }}### {{ .FieldName }}

{{ .Description }}.

* **Type**: {{ .DataType }}
* **Requirement**: {{ .Requirement }}
{{- if .AllowedValues }}
* **Allowed values**: {{ join .AllowedValues }}
{{- end }}
{{- if .Example }}
* **Example**: ` + "`{{ .Example }}`" + `
{{- end }}

{{ end }}`))
