package css

import (
	"bytes"
	"encoding/json"
	"iter"

	orderedmap "github.com/elliotchance/orderedmap/v3"
)

// ValueKind discriminates StyleValue variants.
type ValueKind int

const (
	ValueString ValueKind = iota // plain string value
	ValueNumber                  // numeric value (from theme modules)
	ValueMap                     // grouped sub-object
)

// String returns human readable kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueNumber:
		return "number"
	case ValueMap:
		return "map"
	default:
		return "unknown"
	}
}

// StyleValue represents a single design token value: a string, a number or a
// nested group of tokens. Kind selects which of the payload fields is valid.
type StyleValue struct {
	Kind ValueKind
	Str  string
	Num  float64
	Map  *StyleMap
}

func StringValue(s string) StyleValue {
	return StyleValue{Kind: ValueString, Str: s}
}

func NumberValue(n float64) StyleValue {
	return StyleValue{Kind: ValueNumber, Num: n}
}

func MapValue(m *StyleMap) StyleValue {
	return StyleValue{Kind: ValueMap, Map: m}
}

// MarshalJSON emits the underlying scalar or object, never the wrapper.
func (v StyleValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNumber:
		return json.Marshal(v.Num)
	case ValueMap:
		return json.Marshal(v.Map)
	default:
		return json.Marshal(v.Str)
	}
}

// StyleMap is a property name to value mapping preserving insertion order.
// Setting an existing key overwrites its value but keeps the original position.
type StyleMap struct {
	om *orderedmap.OrderedMap[string, StyleValue]
}

func NewStyleMap() *StyleMap {
	return &StyleMap{om: orderedmap.NewOrderedMap[string, StyleValue]()}
}

func (m *StyleMap) Set(key string, val StyleValue) {
	m.om.Set(key, val)
}

func (m *StyleMap) Get(key string) (StyleValue, bool) {
	return m.om.Get(key)
}

func (m *StyleMap) Len() int {
	if m == nil {
		return 0
	}
	return m.om.Len()
}

// All iterates entries in insertion order.
func (m *StyleMap) All() iter.Seq2[string, StyleValue] {
	return m.om.AllFromFront()
}

// MarshalJSON emits a JSON object with keys in insertion order.
func (m *StyleMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for key, val := range m.om.AllFromFront() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ThemeRecord is a fully parsed inline theme. It is never constructed with an
// empty name or empty styles - incomplete candidates are discarded by the
// parser before a record exists.
type ThemeRecord struct {
	Name   string
	Styles *StyleMap
}
