// Package schema derives a language neutral description of Go payload types
// by reflection. The description drives the contract export and the CLI.
package schema

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/kompox/patternapi/internal/codec"
)

// MaxDepth bounds type recursion.
const MaxDepth = 4096

type Type string

const (
	TypeBool     Type = "bool"
	TypeInt      Type = "int"
	TypeUint     Type = "uint"
	TypeFloat    Type = "float"
	TypeString   Type = "string"
	TypeStruct   Type = "struct"
	TypeArray    Type = "array"
	TypeMap      Type = "map"
	TypeFunction Type = "function"
	TypeAny      Type = "any"
)

// Schema is a root type plus every struct layout it references.
type Schema struct {
	TypeInfo      *TypeInfo               `json:"typeInfo,omitempty"`
	StructLayouts map[string]StructLayout `json:"structs,omitempty"`
}

// TypeInfo describes one type. Pointer marks values that may be null.
type TypeInfo struct {
	Type    Type `json:"type"`
	Pointer bool `json:"pointer,omitempty"`

	// Type == array
	ElementType *TypeInfo `json:"elementType,omitempty"`

	// Type == struct
	StructRef string `json:"structRef,omitempty"`

	// Type == map
	KeyType   *TypeInfo `json:"keyType,omitempty"`
	ValueType *TypeInfo `json:"valueType,omitempty"`
}

type StructLayout struct {
	Name       string               `json:"name,omitempty"`
	Properties map[string]*TypeInfo `json:"properties"`
}

func (l *StructLayout) IsAnonymous() bool { return l.Name == "" }

// StructLayout resolves the layout referenced by a struct TypeInfo.
func (ti *TypeInfo) StructLayout(s *Schema) (*StructLayout, error) {
	if ti.Type != TypeStruct {
		return nil, fmt.Errorf("type %s is not a struct", ti.Type)
	}
	l, ok := s.StructLayouts[ti.StructRef]
	if !ok {
		return nil, fmt.Errorf("struct layout %q not found", ti.StructRef)
	}
	return &l, nil
}

func (s *Schema) Json() (string, error) {
	b, err := codec.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Yaml renders the schema as YAML using the json field names.
func (s *Schema) Yaml() (string, error) {
	b, err := codec.MarshalYAML(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Generate describes the dynamic type of v. A nil v yields a nullable any.
func Generate(v any) (*Schema, error) {
	return GenerateType(reflect.TypeOf(v))
}

// GenerateType describes t.
func GenerateType(t reflect.Type) (*Schema, error) {
	g := &generator{
		schema: &Schema{StructLayouts: map[string]StructLayout{}},
		seen:   map[reflect.Type]string{},
	}
	ti, err := g.parse(t, 0)
	if err != nil {
		return nil, err
	}
	g.schema.TypeInfo = ti
	return g.schema, nil
}

// MustGenerate is like Generate but panics on error.
func MustGenerate(v any) *Schema {
	s, err := Generate(v)
	if err != nil {
		panic(err)
	}
	return s
}

var (
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	rawMessageType    = reflect.TypeFor[json.RawMessage]()
)

type generator struct {
	schema *Schema
	seen   map[reflect.Type]string
	anon   int
}

func (g *generator) parse(t reflect.Type, depth int) (*TypeInfo, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("exceeded max recursion depth of %d", MaxDepth)
	}
	if t == nil {
		return &TypeInfo{Type: TypeAny, Pointer: true}, nil
	}

	ti := &TypeInfo{}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
		ti.Pointer = true
	}

	// Types with their own wire encoding are described by what they emit.
	switch {
	case t == rawMessageType:
		ti.Type = TypeAny
		ti.Pointer = true
		return ti, nil
	case t.Kind() != reflect.String && implements(t, textMarshalerType):
		ti.Type = TypeString
		return ti, nil
	case t.Kind() == reflect.Struct && implements(t, jsonMarshalerType):
		ti.Type = TypeAny
		ti.Pointer = true
		return ti, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		ti.Type = TypeBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ti.Type = TypeInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		ti.Type = TypeUint
	case reflect.Float32, reflect.Float64:
		ti.Type = TypeFloat
	case reflect.String:
		ti.Type = TypeString
	case reflect.Func:
		ti.Type = TypeFunction
	case reflect.Interface:
		ti.Type = TypeAny
		ti.Pointer = true
	case reflect.Map:
		ti.Type = TypeMap
		k, err := g.parse(t.Key(), depth+1)
		if err != nil {
			return nil, err
		}
		v, err := g.parse(t.Elem(), depth+1)
		if err != nil {
			return nil, err
		}
		ti.KeyType, ti.ValueType = k, v
	case reflect.Slice, reflect.Array:
		if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
			// []byte is base64 text on the wire
			ti.Type = TypeString
			return ti, nil
		}
		ti.Type = TypeArray
		e, err := g.parse(t.Elem(), depth+1)
		if err != nil {
			return nil, err
		}
		ti.ElementType = e
	case reflect.Struct:
		ti.Type = TypeStruct
		ref, err := g.parseStruct(t, depth)
		if err != nil {
			return nil, err
		}
		ti.StructRef = ref
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind())
	}
	return ti, nil
}

func (g *generator) parseStruct(t reflect.Type, depth int) (string, error) {
	if ref, ok := g.seen[t]; ok {
		return ref, nil
	}
	layout := StructLayout{Properties: map[string]*TypeInfo{}}
	var ref string
	if t.Name() == "" {
		ref = fmt.Sprintf("ANON_STRUCT_%d", g.anon)
		g.anon++
	} else {
		layout.Name = t.PkgPath() + "." + t.Name()
		ref = layout.Name
	}
	// registered before walking the fields so self references terminate
	g.seen[t] = ref
	g.schema.StructLayouts[ref] = layout

	if err := g.fields(t, layout.Properties, depth); err != nil {
		return "", err
	}
	return ref, nil
}

// fields collects the exported fields of t, flattening embedded structs
// that carry no json name the way encoding/json does.
func (g *generator) fields(t reflect.Type, props map[string]*TypeInfo, depth int) error {
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && !implements(ft, jsonMarshalerType) {
				if err := g.fields(ft, props, depth+1); err != nil {
					return err
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		ti, err := g.parse(f.Type, depth+1)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}
		if _, dup := props[name]; dup {
			continue
		}
		props[name] = ti
	}
	return nil
}

func implements(t, iface reflect.Type) bool {
	return t.Implements(iface) || reflect.PointerTo(t).Implements(iface)
}
