// Package tsgen renders pattern contracts as a TypeScript module: the pattern
// enum, both lookup tables, request/response aliases and a typed accessor.
package tsgen

import (
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/kompox/patternapi/domain/schema"
	"github.com/kompox/patternapi/internal/naming"
)

//go:embed typescript.tmpl
var typescriptTemplate string

var tmpl = template.Must(template.New("typescript").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{
		"tsType":    tsType,
		"yamlLines": yamlLines,
		"structs":   structs,
	}).
	Parse(typescriptTemplate))

// Entry describes one pattern to render.
type Entry struct {
	Identifier        string
	Wire              string
	Deprecated        bool
	DeprecatedMessage string
	// Request and Response are nil when no data is exchanged.
	Request  *schema.Schema
	Response *schema.Schema
}

type scope struct {
	Name              string
	Kind              string
	Schema            *schema.Schema
	Deprecated        bool
	DeprecatedMessage string
}

type entryView struct {
	Entry
	Request  scope
	Response scope
}

type tsStruct struct {
	Name string
	Body string
}

// Render writes the TypeScript module for entries ordered by identifier.
func Render(w io.Writer, entries []Entry) error {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int { return strings.Compare(a.Identifier, b.Identifier) })

	views := make([]entryView, 0, len(sorted))
	for _, e := range sorted {
		views = append(views, entryView{
			Entry: e,
			Request: scope{
				Name: e.Identifier + "_REQUEST", Kind: "request", Schema: e.Request,
				Deprecated: e.Deprecated, DeprecatedMessage: e.DeprecatedMessage,
			},
			Response: scope{
				Name: e.Identifier + "_RESPONSE", Kind: "response", Schema: e.Response,
				Deprecated: e.Deprecated, DeprecatedMessage: e.DeprecatedMessage,
			},
		})
	}
	return tmpl.Execute(w, struct{ Entries []entryView }{views})
}

func yamlLines(s *schema.Schema) ([]string, error) {
	y, err := s.Yaml()
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(y, "\n"), "\n"), nil
}

func structs(sc scope) ([]tsStruct, error) {
	if sc.Schema == nil {
		return nil, nil
	}
	refs := make([]string, 0, len(sc.Schema.StructLayouts))
	for ref := range sc.Schema.StructLayouts {
		refs = append(refs, ref)
	}
	slices.Sort(refs)

	out := make([]tsStruct, 0, len(refs))
	for _, ref := range refs {
		layout := sc.Schema.StructLayouts[ref]
		body, err := structBody(sc.Name, sc.Schema, &layout)
		if err != nil {
			return nil, err
		}
		out = append(out, tsStruct{Name: naming.StructRefIdentifier(sc.Name, ref), Body: body})
	}
	return out, nil
}

func structBody(scopeName string, s *schema.Schema, layout *schema.StructLayout) (string, error) {
	names := make([]string, 0, len(layout.Properties))
	for name := range layout.Properties {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("{")
	for i, name := range names {
		t, err := tsType(scopeName, s, layout.Properties[name])
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%q: %s", name, t)
	}
	b.WriteString("}")
	return b.String(), nil
}

func tsType(scopeName string, s *schema.Schema, ti *schema.TypeInfo) (string, error) {
	return tsTypeDepth(scopeName, s, ti, 0)
}

func tsTypeDepth(scopeName string, s *schema.Schema, ti *schema.TypeInfo, depth int) (string, error) {
	if depth > schema.MaxDepth {
		return "", fmt.Errorf("exceeded max recursion depth of %d", schema.MaxDepth)
	}
	if ti == nil {
		return "any", nil
	}
	nullable := ""
	if ti.Pointer {
		nullable = "|undefined"
	}
	switch ti.Type {
	case schema.TypeBool:
		return "boolean" + nullable, nil
	case schema.TypeInt, schema.TypeUint, schema.TypeFloat:
		return "number" + nullable, nil
	case schema.TypeString:
		return "string" + nullable, nil
	case schema.TypeArray:
		elem, err := tsTypeDepth(scopeName, s, ti.ElementType, depth+1)
		if err != nil {
			return "", err
		}
		if strings.Contains(elem, "|") {
			elem = "(" + elem + ")"
		}
		return elem + "[]" + nullable, nil
	case schema.TypeMap:
		k, err := tsTypeDepth(scopeName, s, ti.KeyType, depth+1)
		if err != nil {
			return "", err
		}
		v, err := tsTypeDepth(scopeName, s, ti.ValueType, depth+1)
		if err != nil {
			return "", err
		}
		return "Record<" + k + ", " + v + ">" + nullable, nil
	case schema.TypeAny:
		return "any", nil
	case schema.TypeStruct:
		if _, ok := s.StructLayouts[ti.StructRef]; !ok {
			return "", fmt.Errorf("struct layout %q not found", ti.StructRef)
		}
		return naming.StructRefIdentifier(scopeName, ti.StructRef) + nullable, nil
	case schema.TypeFunction:
		return "Function" + nullable, nil
	}
	return "", fmt.Errorf("unsupported schema type %q", ti.Type)
}
