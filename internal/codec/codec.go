// Package codec is the single JSON/YAML encoding point for datagrams,
// payloads and envelopes.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"sigs.k8s.io/yaml"
)

var (
	std = jsoniter.ConfigCompatibleWithStandardLibrary

	strict = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		DisallowUnknownFields:  true,
	}.Froze()
)

func Marshal(v any) ([]byte, error) { return std.Marshal(v) }

// MarshalIndent encodes v with two-space indentation, raw values included.
func MarshalIndent(v any) ([]byte, error) {
	b, err := std.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte, v any) error { return std.Unmarshal(data, v) }

// IsEmpty reports whether data carries no value: nothing, whitespace or null.
func IsEmpty(data []byte) bool {
	t := bytes.TrimSpace(data)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// DecodeStrict decodes data into v rejecting unknown object fields and
// trailing garbage. Empty input leaves v untouched.
func DecodeStrict(data []byte, v any) error {
	if IsEmpty(data) {
		return nil
	}
	it := strict.BorrowIterator(data)
	defer strict.ReturnIterator(it)
	it.ReadVal(v)
	if it.Error != nil {
		return it.Error
	}
	// Only whitespace may follow; the iterator reports io.EOF once it is exhausted.
	if it.WhatIsNext() != jsoniter.InvalidValue || it.Error != io.EOF {
		return fmt.Errorf("unexpected data after top-level value")
	}
	return nil
}

// YAMLToJSON converts a YAML (or JSON) document to JSON.
func YAMLToJSON(data []byte) ([]byte, error) {
	return yaml.YAMLToJSON(data)
}

// MarshalYAML encodes v as YAML honoring its json tags.
func MarshalYAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// RawValue is an encoded JSON value kept for delayed decoding.
type RawValue = json.RawMessage
