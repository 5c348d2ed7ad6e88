package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DynamicKind identifies which variant a DynamicValue holds.
type DynamicKind int

const (
	// DynamicString marks a free-form string value.
	DynamicString DynamicKind = iota
	// DynamicBool marks a boolean (checkbox) value.
	DynamicBool
)

// DynamicValue is a tagged union of the value types a case form field may
// hold. String and bool values are never considered equal to each other.
type DynamicValue struct {
	Kind DynamicKind
	Str  string
	Bool bool
}

// StringValue returns a string-typed DynamicValue.
func StringValue(s string) DynamicValue {
	return DynamicValue{Kind: DynamicString, Str: s}
}

// BoolValue returns a bool-typed DynamicValue.
func BoolValue(b bool) DynamicValue {
	return DynamicValue{Kind: DynamicBool, Bool: b}
}

// IsBool reports whether v holds a boolean.
func (v DynamicValue) IsBool() bool {
	return v.Kind == DynamicBool
}

// Equal compares trimmed strings for string values and exact values for
// booleans. Values of different kinds are never equal.
func (v DynamicValue) Equal(other DynamicValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	if v.IsBool() {
		return v.Bool == other.Bool
	}
	return strings.TrimSpace(v.Str) == strings.TrimSpace(other.Str)
}

// String renders the value for logs.
func (v DynamicValue) String() string {
	if v.IsBool() {
		return fmt.Sprintf("%t", v.Bool)
	}
	return v.Str
}

// MarshalJSON encodes the value as a bare JSON string or boolean.
func (v DynamicValue) MarshalJSON() ([]byte, error) {
	if v.IsBool() {
		return json.Marshal(v.Bool)
	}
	return json.Marshal(v.Str)
}

// UnmarshalJSON accepts a JSON string or boolean. null decodes to an empty
// string value.
func (v *DynamicValue) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case nil:
		*v = StringValue("")
	case string:
		*v = StringValue(value)
	case bool:
		*v = BoolValue(value)
	default:
		return fmt.Errorf("unsupported dynamic value %s", string(b))
	}
	return nil
}

// FormData holds a case's form fields keyed by field name.
type FormData map[string]DynamicValue

// Keys returns the field names in sorted order.
func (f FormData) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of f.
func (f FormData) Clone() FormData {
	if f == nil {
		return nil
	}
	out := make(FormData, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Equal compares both maps key by key using DynamicValue equality.
func (f FormData) Equal(other FormData) bool {
	if len(f) != len(other) {
		return false
	}
	for k, v := range f {
		o, ok := other[k]
		if !ok || !v.Equal(o) {
			return false
		}
	}
	return true
}

// KeyDynamicValue is the list form of a form field used on the wire by the
// remote authority.
type KeyDynamicValue struct {
	Field string       `json:"field_key"`
	Value DynamicValue `json:"field_value"`
}

// ToFormData converts the wire list into a FormData map. Later duplicates win.
func ToFormData(values []KeyDynamicValue) FormData {
	out := make(FormData, len(values))
	for _, kv := range values {
		out[kv.Field] = kv.Value
	}
	return out
}

// ToKeyDynamicValues converts f into its wire list ordered by key.
func (f FormData) ToKeyDynamicValues() []KeyDynamicValue {
	out := make([]KeyDynamicValue, 0, len(f))
	for _, k := range f.Keys() {
		out = append(out, KeyDynamicValue{Field: k, Value: f[k]})
	}
	return out
}
