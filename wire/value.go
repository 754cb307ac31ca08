package wire

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Kind discriminates the finite variants of an external value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// Value represents a wire-shaped external value: null, bool, number,
// string, list or string-keyed object. Values are transient, built per
// request and discarded after conversion.
type Value struct {
	kind Kind
	flag bool
	num  float64
	text string
	list []Value
	obj  map[string]Value
}

// Null is the absent value.
var Null = Value{}

// Bool returns a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, flag: v}
}

// Number returns a numeric value; all wire numbers are carried as float64.
func Number(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// Int returns a numeric value from an integer.
func Int(v int) Value {
	return Value{kind: KindNumber, num: float64(v)}
}

// String returns a string value.
func String(v string) Value {
	return Value{kind: KindString, text: v}
}

// List returns an ordered list value.
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Object returns an object value with the supplied fields.
func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, obj: fields}
}

// Kind returns the value variant.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true for the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload.
func (v Value) Bool() bool {
	return v.flag
}

// Float returns the numeric payload.
func (v Value) Float() float64 {
	return v.num
}

// Int returns the numeric payload truncated toward zero.
func (v Value) Int() int64 {
	return int64(v.num)
}

// Text returns the string payload.
func (v Value) Text() string {
	return v.text
}

// Items returns the list payload.
func (v Value) Items() []Value {
	return v.list
}

// Fields returns the object payload.
func (v Value) Fields() map[string]Value {
	return v.obj
}

// Keys returns object keys in lexical order.
func (v Value) Keys() []string {
	if len(v.obj) == 0 {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Field returns a named object field.
func (v Value) Field(name string) (Value, bool) {
	ret, ok := v.obj[name]
	return ret, ok
}

// FieldFold returns a named object field matched case-insensitively; an
// exact match wins over a folded one.
func (v Value) FieldFold(name string) (Value, bool) {
	if ret, ok := v.obj[name]; ok {
		return ret, true
	}
	for key, ret := range v.obj {
		if strings.EqualFold(key, name) {
			return ret, true
		}
	}
	return Null, false
}

// Len returns the list or object size.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindObject:
		return len(v.obj)
	}
	return 0
}

// Equal reports deep equality; numbers compare within a small tolerance.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.flag == o.flag
	case KindNumber:
		return math.Abs(v.num-o.num) <= 1e-6
	case KindString:
		return v.text == o.text
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for key, item := range v.obj {
			other, ok := o.obj[key]
			if !ok || !item.Equal(other) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface rebuilds the equivalent interface{} tree.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.flag
	case KindNumber:
		return v.num
	case KindString:
		return v.text
	case KindList:
		ret := make([]interface{}, len(v.list))
		for i, item := range v.list {
			ret[i] = item.Interface()
		}
		return ret
	case KindObject:
		ret := make(map[string]interface{}, len(v.obj))
		for key, item := range v.obj {
			ret[key] = item.Interface()
		}
		return ret
	}
	return nil
}

// String returns a debug representation.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return strconv.Quote(v.text)
	case KindList:
		items := make([]string, len(v.list))
		for i, item := range v.list {
			items[i] = item.String()
		}
		return "[" + strings.Join(items, ",") + "]"
	case KindObject:
		items := make([]string, 0, len(v.obj))
		for _, key := range v.Keys() {
			items = append(items, strconv.Quote(key)+":"+v.obj[key].String())
		}
		return "{" + strings.Join(items, ",") + "}"
	}
	return ""
}

// FromInterface builds a value from a decoded interface{} tree.
func FromInterface(v interface{}) (Value, error) {
	switch actual := v.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(actual), nil
	case float64:
		return Number(actual), nil
	case float32:
		return Number(float64(actual)), nil
	case int:
		return Number(float64(actual)), nil
	case int8:
		return Number(float64(actual)), nil
	case int16:
		return Number(float64(actual)), nil
	case int32:
		return Number(float64(actual)), nil
	case int64:
		return Number(float64(actual)), nil
	case uint:
		return Number(float64(actual)), nil
	case uint8:
		return Number(float64(actual)), nil
	case uint16:
		return Number(float64(actual)), nil
	case uint32:
		return Number(float64(actual)), nil
	case uint64:
		return Number(float64(actual)), nil
	case string:
		return String(actual), nil
	case []interface{}:
		items := make([]Value, len(actual))
		for i, item := range actual {
			converted, err := FromInterface(item)
			if err != nil {
				return Null, err
			}
			items[i] = converted
		}
		return List(items...), nil
	case map[string]interface{}:
		fields := make(map[string]Value, len(actual))
		for key, item := range actual {
			converted, err := FromInterface(item)
			if err != nil {
				return Null, err
			}
			fields[key] = converted
		}
		return Object(fields), nil
	}
	return Null, fmt.Errorf("unsupported wire value type: %v", reflect.TypeOf(v))
}
