package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

var umbrellaTemplate = template.Must(template.New("umbrella").Parse(`// Code generated by errgen from {{.Source}}. DO NOT EDIT.

package {{.Registry.Package}}

import "strconv"

// Kind identifies a registered leaf type.
type Kind int

const (
{{- range $i, $leaf := .Registry.Leaves}}
	Kind{{$leaf.Name}}{{if eq $i 0}} Kind = iota + 1{{end}}
{{- end}}
)

var kindNames = [...]string{
{{- range .Registry.Leaves}}
	Kind{{.Name}}: "{{.Name}}",
{{- end}}
}

// Kinds returns every registered kind in registry order.
func Kinds() []Kind {
	return []Kind{
{{- range .Registry.Leaves}}
		Kind{{.Name}},
{{- end}}
	}
}

// String returns the name of the leaf type.
func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

var (
{{- range .Registry.Leaves}}
	_ Leaf = {{.Name}}{}
{{- end}}
)
{{range .Registry.Leaves}}
func ({{.Name}}) Kind() Kind { return Kind{{.Name}} }
{{if .Code}}
func ({{.Name}}) Code() ErrorCode { return {{.Code}} }
{{end}}
func ({{.Name}}) leaf() {}
{{end}}`))

// Generate renders the gofmt-ed umbrella source for reg. source names the
// registry file in the generated header.
func Generate(reg *Registry, source string) ([]byte, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	data := struct {
		Registry *Registry
		Source   string
	}{reg, source}
	if err := umbrellaTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render umbrella: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return out, nil
}
