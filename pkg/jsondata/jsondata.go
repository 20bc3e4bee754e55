// Package jsondata models JSON objects returned by the Webex Teams API as
// read-only Go values. An Object wraps one JSON object and offers two access
// paths: typed accessors declared by the resource views in pkg/models, and a
// generic GetField lookup for ad-hoc fields.
package jsondata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Object is an immutable view over a single JSON object. All exposed
// snapshots are independent copies; nothing handed out by an Object aliases
// its internal state.
type Object struct {
	typeName string
	data     *Map
}

// Option configures a new Object.
type Option func(*Object)

// WithTypeName sets the name used in the string forms and in field-not-found
// diagnostics. The default is "Object".
func WithTypeName(name string) Option {
	return func(o *Object) {
		o.typeName = name
	}
}

// New builds an Object from JSON object text (string, []byte or
// json.RawMessage), a native map, an ordered Map, or another Object. Text is
// decoded preserving the document's key order, with numbers kept as
// json.Number. Any other input, invalid JSON, or JSON whose root is not an
// object fails with ErrInvalidDataType.
func New(input any, opts ...Option) (*Object, error) {
	o := &Object{typeName: "Object"}
	for _, opt := range opts {
		opt(o)
	}

	switch v := input.(type) {
	case string:
		m, err := parseObjectText([]byte(v))
		if err != nil {
			return nil, err
		}
		o.data = m
	case []byte:
		m, err := parseObjectText(v)
		if err != nil {
			return nil, err
		}
		o.data = m
	case json.RawMessage:
		m, err := parseObjectText(v)
		if err != nil {
			return nil, err
		}
		o.data = m
	case *Map:
		if v == nil {
			return nil, fmt.Errorf("%w: nil map", ErrInvalidDataType)
		}
		o.data = v.Clone()
	case map[string]any:
		o.data = fromGoMap(v)
	case *Object:
		if v == nil {
			return nil, fmt.Errorf("%w: nil object", ErrInvalidDataType)
		}
		o.data = v.data.Clone()
	default:
		return nil, fmt.Errorf("%w: cannot build a JSON object from %T", ErrInvalidDataType, input)
	}
	return o, nil
}

// TypeName returns the diagnostic name of this object.
func (o *Object) TypeName() string {
	return o.typeName
}

// GetField looks up a top-level key. Object-valued fields are wrapped in a
// fresh Object on every call (wrappers are never cached), all other values
// are returned as decoded, including arrays whose elements stay raw. An
// absent key fails with a FieldNotFoundError carrying the object's type name.
func (o *Object) GetField(name string) (any, error) {
	v, ok := o.data.Get(name)
	if !ok {
		return nil, &FieldNotFoundError{TypeName: o.typeName, Field: name}
	}
	if nested, ok := v.(*Map); ok {
		return &Object{typeName: "Object", data: nested.Clone()}, nil
	}
	return v, nil
}

// Field is the non-raising lookup used by declared resource accessors: an
// absent key yields nil instead of an error. Object-valued fields are
// wrapped the same way GetField wraps them.
func (o *Object) Field(name string) any {
	v, err := o.GetField(name)
	if err != nil {
		return nil
	}
	return v
}

// Has reports whether the object carries the given top-level key.
func (o *Object) Has(name string) bool {
	return o.data.Has(name)
}

// StringField returns the string value under name, or "" when the key is
// absent or not a string.
func (o *Object) StringField(name string) string {
	v, _ := o.data.Get(name)
	s, _ := v.(string)
	return s
}

// IntField returns the integer value under name, or 0 when the key is absent
// or not a whole number.
func (o *Object) IntField(name string) int {
	v, _ := o.data.Get(name)
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	}
	return 0
}

// BoolField returns the boolean value under name, or false when the key is
// absent or not a boolean.
func (o *Object) BoolField(name string) bool {
	v, _ := o.data.Get(name)
	b, _ := v.(bool)
	return b
}

// StringSliceField returns the string elements of the array under name.
// Absent keys and non-string elements are skipped.
func (o *Object) StringSliceField(name string) []string {
	v, _ := o.data.Get(name)
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, elem := range arr {
		if s, ok := elem.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Data returns a deep snapshot of the underlying object, key order
// preserved. Mutating the snapshot does not affect this object.
func (o *Object) Data() *Map {
	return o.data.Clone()
}

// ToDict returns the underlying object as a plain Go map. Nested objects
// become plain maps as well; the copy is independent of this object.
func (o *Object) ToDict() map[string]any {
	return toPlainMap(o.data)
}

func toPlainMap(m *Map) map[string]any {
	out := make(map[string]any, m.Len())
	for _, key := range m.keys {
		out[key] = toPlainValue(m.values[key])
	}
	return out
}

func toPlainValue(v any) any {
	switch val := v.(type) {
	case *Map:
		return toPlainMap(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = toPlainValue(elem)
		}
		return out
	default:
		return v
	}
}

// EncodeOption configures ToJSON output.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	prefix     string
	indent     string
	sortKeys   bool
	escapeHTML bool
}

// Indent emits indented output, mirroring json.Encoder.SetIndent.
func Indent(prefix, indent string) EncodeOption {
	return func(c *encodeConfig) {
		c.prefix = prefix
		c.indent = indent
	}
}

// SortKeys serializes keys in sorted order instead of document order.
func SortKeys() EncodeOption {
	return func(c *encodeConfig) {
		c.sortKeys = true
	}
}

// EscapeHTML escapes <, > and & in the output, as encoding/json does by
// default. ToJSON leaves them literal unless this option is given.
func EscapeHTML() EncodeOption {
	return func(c *encodeConfig) {
		c.escapeHTML = true
	}
}

// ToJSON serializes the object to JSON text. Options are forwarded to the
// underlying encoder.
func (o *Object) ToJSON(opts ...EncodeOption) (string, error) {
	var cfg encodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var value any = o.data
	if cfg.sortKeys {
		// encoding/json sorts plain map keys.
		value = o.ToDict()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(cfg.escapeHTML)
	if cfg.prefix != "" || cfg.indent != "" {
		enc.SetIndent(cfg.prefix, cfg.indent)
	}
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// String renders the type name followed by the pretty-printed JSON object.
func (o *Object) String() string {
	text, err := o.ToJSON(Indent("", "  "))
	if err != nil {
		return o.typeName + ": <unserializable>"
	}
	return o.typeName + ":\n" + text
}

// GoString renders a round-trip-oriented debug form: the type name applied
// to the quoted JSON text, with non-ASCII characters preserved literally.
// It backs the %#v verb.
func (o *Object) GoString() string {
	text, err := o.ToJSON()
	if err != nil {
		return o.typeName + "(<unserializable>)"
	}
	return o.typeName + "(" + strconv.Quote(text) + ")"
}
