package schema_test

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kompox/patternapi/domain/schema"
)

func TestScalars(t *testing.T) {
	s := "foo"
	tests := []struct {
		name    string
		in      any
		want    schema.Type
		pointer bool
	}{
		{"string", "foo", schema.TypeString, false},
		{"string pointer", &s, schema.TypeString, true},
		{"bool", false, schema.TypeBool, false},
		{"int", 0, schema.TypeInt, false},
		{"uint", uint(0), schema.TypeUint, false},
		{"float", 0.0, schema.TypeFloat, false},
		{"function", func() {}, schema.TypeFunction, false},
		{"nil", nil, schema.TypeAny, true},
		{"time", time.Time{}, schema.TypeString, false},
		{"bytes", []byte("x"), schema.TypeString, false},
		{"raw", json.RawMessage(`{}`), schema.TypeAny, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.Generate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.TypeInfo.Type)
			assert.Equal(t, tt.pointer, got.TypeInfo.Pointer)
		})
	}
}

func TestCollections(t *testing.T) {
	s, err := schema.Generate([]*int{})
	require.NoError(t, err)
	assert.Equal(t, schema.TypeArray, s.TypeInfo.Type)
	assert.Equal(t, schema.TypeInt, s.TypeInfo.ElementType.Type)
	assert.True(t, s.TypeInfo.ElementType.Pointer)

	s, err = schema.Generate(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, schema.TypeMap, s.TypeInfo.Type)
	assert.Equal(t, schema.TypeString, s.TypeInfo.KeyType.Type)
	assert.Equal(t, schema.TypeAny, s.TypeInfo.ValueType.Type)
}

type inner struct {
	Value int `json:"value"`
}

type node struct {
	Name     string `json:"name"`
	Hidden   string `json:"-"`
	private  string
	Untagged bool
	Next     *node  `json:"next,omitempty"`
	A        inner  `json:"a"`
	B        *inner `json:"b"`
	Anon     struct {
		X string `json:"x"`
	} `json:"anon"`
}

func TestStruct(t *testing.T) {
	s, err := schema.Generate(node{})
	require.NoError(t, err)
	require.Equal(t, schema.TypeStruct, s.TypeInfo.Type)

	root, err := s.TypeInfo.StructLayout(s)
	require.NoError(t, err)
	assert.Equal(t, "github.com/kompox/patternapi/domain/schema_test.node", root.Name)

	props := root.Properties
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "Untagged")
	assert.NotContains(t, props, "Hidden")
	assert.NotContains(t, props, "-")
	assert.NotContains(t, props, "private")

	assert.Equal(t, s.TypeInfo.StructRef, props["next"].StructRef)
	assert.True(t, props["next"].Pointer)
	assert.Equal(t, props["a"].StructRef, props["b"].StructRef)
	assert.True(t, props["b"].Pointer)

	anon, err := props["anon"].StructLayout(s)
	require.NoError(t, err)
	assert.True(t, anon.IsAnonymous())
	assert.Equal(t, "ANON_STRUCT_0", props["anon"].StructRef)

	assert.Len(t, s.StructLayouts, 3)
}

type user struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Email             string `json:"email"`
}

func TestEmbeddedAndKubernetesTypes(t *testing.T) {
	s, err := schema.Generate(&user{})
	require.NoError(t, err)
	assert.True(t, s.TypeInfo.Pointer)

	root, err := s.TypeInfo.StructLayout(s)
	require.NoError(t, err)
	assert.Contains(t, root.Properties, "kind")
	assert.Contains(t, root.Properties, "apiVersion")
	assert.Contains(t, root.Properties, "metadata")

	meta, err := root.Properties["metadata"].StructLayout(s)
	require.NoError(t, err)
	assert.Equal(t, schema.TypeString, meta.Properties["creationTimestamp"].Type)
}

func TestUnsupportedKind(t *testing.T) {
	_, err := schema.GenerateType(reflect.TypeFor[chan int]())
	assert.Error(t, err)
	assert.Panics(t, func() { schema.MustGenerate(struct{ C chan int }{}) })
}

func TestRender(t *testing.T) {
	s := schema.MustGenerate(inner{})
	j, err := s.Json()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"typeInfo": {"type": "struct", "structRef": "github.com/kompox/patternapi/domain/schema_test.inner"},
		"structs": {
			"github.com/kompox/patternapi/domain/schema_test.inner": {
				"name": "github.com/kompox/patternapi/domain/schema_test.inner",
				"properties": {"value": {"type": "int"}}
			}
		}
	}`, j)

	y, err := s.Yaml()
	require.NoError(t, err)
	assert.Contains(t, y, "typeInfo:")
	assert.Contains(t, y, "structRef: github.com/kompox/patternapi/domain/schema_test.inner")
}
