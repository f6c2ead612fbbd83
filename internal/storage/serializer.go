package storage

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format names an on-disk encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatGob  Format = "gob"
)

// Serializer encodes a collection to bytes and back.
type Serializer[V any] interface {
	Marshal(items []V) ([]byte, error)
	Unmarshal(data []byte) ([]V, error)
	// Extension is the file name suffix, including the dot.
	Extension() string
}

// NewSerializer returns the serializer for format.
func NewSerializer[V any](format Format) (Serializer[V], error) {
	switch format {
	case FormatJSON:
		return JSONSerializer[V]{}, nil
	case FormatYAML:
		return YAMLSerializer[V]{}, nil
	case FormatGob:
		return GobSerializer[V]{}, nil
	default:
		return nil, fmt.Errorf("unknown storage format %q", format)
	}
}

// JSONSerializer writes an indented JSON array.
type JSONSerializer[V any] struct{}

func (JSONSerializer[V]) Marshal(items []V) ([]byte, error) {
	if items == nil {
		items = []V{}
	}
	return json.MarshalIndent(items, "", "  ")
}

func (JSONSerializer[V]) Unmarshal(data []byte) ([]V, error) {
	var items []V
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (JSONSerializer[V]) Extension() string { return ".json" }

// YAMLSerializer writes a YAML sequence.
type YAMLSerializer[V any] struct{}

func (YAMLSerializer[V]) Marshal(items []V) ([]byte, error) {
	if items == nil {
		items = []V{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAMLSerializer[V]) Unmarshal(data []byte) ([]V, error) {
	var items []V
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (YAMLSerializer[V]) Extension() string { return ".yaml" }

// GobSerializer writes a binary gob stream.
type GobSerializer[V any] struct{}

func (GobSerializer[V]) Marshal(items []V) ([]byte, error) {
	if items == nil {
		items = []V{}
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GobSerializer[V]) Unmarshal(data []byte) ([]V, error) {
	var items []V
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

func (GobSerializer[V]) Extension() string { return ".bin" }
