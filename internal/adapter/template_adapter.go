package adapter

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"text/template"

	m "testgen.dev/pkg/testgen/internal/model"
)

//go:embed templates/hardhat.test.ts.tmpl
var defaultStubTemplate string

// TemplateRenderer renders the placeholder test file for one symbol.
type TemplateRenderer interface {
	Render(contract m.ContractName, symbol string) (string, error)
}

// StubTemplateData is the data exposed to stub templates.
type StubTemplateData struct {
	Contract string
	Symbol   string
}

// TextTemplateRenderer renders stubs with text/template.
type TextTemplateRenderer struct {
	tmpl *template.Template
}

// NewDefaultTemplateRenderer returns a renderer for the built-in hardhat
// placeholder (describe block, setup hook and two skipped cases).
func NewDefaultTemplateRenderer() *TextTemplateRenderer {
	return &TextTemplateRenderer{
		tmpl: template.Must(template.New("stub").Option("missingkey=error").Parse(defaultStubTemplate)),
	}
}

// NewTemplateRenderer parses text as a stub template.
func NewTemplateRenderer(name, text string) (*TextTemplateRenderer, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	return &TextTemplateRenderer{tmpl: tmpl}, nil
}

// NewTemplateRendererFromFile loads and parses a user supplied stub template.
func NewTemplateRendererFromFile(ctx context.Context, fsAdapter SourceFSAdapter, path m.Path) (*TextTemplateRenderer, error) {
	content, err := fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}

	return NewTemplateRenderer(string(path), string(content))
}

// Render executes the template for contract and symbol.
func (r *TextTemplateRenderer) Render(contract m.ContractName, symbol string) (string, error) {
	var buf bytes.Buffer

	err := r.tmpl.Execute(&buf, StubTemplateData{
		Contract: string(contract),
		Symbol:   symbol,
	})
	if err != nil {
		return "", fmt.Errorf("render %s / %s: %w", contract, symbol, err)
	}

	return buf.String(), nil
}
