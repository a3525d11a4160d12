package bin2cpp

import (
	"strings"
	"text/template"
)

// DefaultNamespace wraps all generated symbols.
const DefaultNamespace = "Rush"

const headerTmpl = `#pragma once
// clang-format off
namespace {{.Namespace}}
{
{{range .Symbols}}{{.Declaration}}
{{end}}}`

const sourceTmpl = `#include "{{.Include}}"
// clang-format off
namespace {{.Namespace}}
{
{{range .Symbols}}{{.Definition}}
{{end}}}`

var (
	headerTemplate = template.Must(template.New("header").Parse(headerTmpl))
	sourceTemplate = template.Must(template.New("source").Parse(sourceTmpl))
)

// Output accumulates embedded symbols in insertion order and renders the
// aggregate header and source bodies.
type Output struct {
	Namespace string
	Include   string
	Symbols   []Symbol
}

// NewOutput returns an empty accumulator. An empty namespace falls back to
// DefaultNamespace. include is the header path the source file includes.
func NewOutput(namespace, include string) *Output {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Output{Namespace: namespace, Include: include}
}

// Add appends a symbol.
func (o *Output) Add(s Symbol) {
	o.Symbols = append(o.Symbols, s)
}

// Header renders the declarations file.
func (o *Output) Header() string {
	return o.render(headerTemplate)
}

// Source renders the definitions file.
func (o *Output) Source() string {
	return o.render(sourceTemplate)
}

func (o *Output) render(t *template.Template) string {
	var sb strings.Builder
	// strings.Builder never fails a write.
	_ = t.Execute(&sb, o)
	return sb.String()
}
