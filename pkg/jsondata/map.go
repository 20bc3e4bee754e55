package jsondata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Map is a JSON object that remembers the order its keys were set in.
// Values are JSON-typed: nil, bool, string, json.Number (or a native Go
// number), []any, or a nested *Map.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Set stores value under key. A new key is appended to the key order,
// resetting an existing key keeps its position.
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns a copy of the keys in document order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// Delete removes key and its value. Removing an absent key is a no-op.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy of the map. Nested maps and slices are copied,
// scalar values are shared (they are immutable).
func (m *Map) Clone() *Map {
	clone := &Map{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]any, len(m.values)),
	}
	copy(clone.keys, m.keys)
	for k, v := range m.values {
		clone.values[k] = cloneValue(v)
	}
	return clone
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Map:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON serializes the map preserving key order. HTML characters are
// not escaped so that non-ASCII text survives a round trip literally.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalValue(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := marshalValue(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the map's content with the decoded object,
// preserving the document's key order. The input must be a JSON object.
func (m *Map) UnmarshalJSON(data []byte) error {
	parsed, err := parseObjectText(data)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

// marshalValue encodes a single JSON value without HTML escaping.
func marshalValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// parseObjectText decodes JSON text whose root must be an object into an
// ordered Map. Numbers are kept as json.Number.
func parseObjectText(data []byte) (*Map, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataType, err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, fmt.Errorf("%w: JSON text must describe an object, found %v", ErrInvalidDataType, tok)
	}
	m, err := decodeObject(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataType, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after the JSON object", ErrInvalidDataType)
	}
	return m, nil
}

// decodeObject consumes the members of an object whose opening brace has
// already been read, including the closing brace.
func decodeObject(dec *json.Decoder) (*Map, error) {
	m := NewMap()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, value)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return m, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := make([]any, 0)
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}
	return arr, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
	return tok, nil
}

// fromGoMap normalizes a native Go map into an ordered Map. Go maps carry no
// insertion order, so keys are sorted for determinism.
func fromGoMap(data map[string]any) *Map {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := NewMap()
	for _, k := range keys {
		m.Set(k, normalizeValue(data[k]))
	}
	return m
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return fromGoMap(val)
	case *Map:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalizeValue(elem)
		}
		return out
	default:
		return v
	}
}
