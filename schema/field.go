package schema

import (
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

// Field describes a composite field: its wire name, declared type,
// internal-detail flag and xunsafe accessor.
type Field struct {
	xField   *xunsafe.Field
	name     string
	wireName string
	internal bool
	rType    reflect.Type
}

// Name returns the declared field name.
func (f *Field) Name() string {
	return f.name
}

// WireName returns the name used on the wire, derived from the json or
// format tag, defaulting to the field name.
func (f *Field) WireName() string {
	return f.wireName
}

// Internal returns true for implementation-detail fields excluded from
// serialization.
func (f *Field) Internal() bool {
	return f.internal
}

// Type returns the field target type descriptor.
func (f *Field) Type() *Type {
	return TypeOf(f.rType)
}

// Value returns the field value at the supplied struct pointer.
func (f *Field) Value(ptr unsafe.Pointer) interface{} {
	return f.xField.Value(ptr)
}

// Set assigns a value at the supplied struct pointer, converting across
// assignable or convertible types.
func (f *Field) Set(ptr unsafe.Pointer, value interface{}) {
	if value == nil {
		f.xField.SetValue(ptr, reflect.Zero(f.rType).Interface())
		return
	}
	srcType := reflect.TypeOf(value)
	if srcType == f.rType {
		f.xField.SetValue(ptr, value)
		return
	}
	rValue := reflect.ValueOf(value)
	if srcType.AssignableTo(f.rType) {
		holder := reflect.New(f.rType).Elem()
		holder.Set(rValue)
		f.xField.SetValue(ptr, holder.Interface())
		return
	}
	f.xField.SetValue(ptr, rValue.Convert(f.rType).Interface())
}

func newField(xField *xunsafe.Field) *Field {
	ret := &Field{
		xField:   xField,
		name:     xField.Name,
		wireName: xField.Name,
		rType:    xField.Type,
	}
	if ret.name == "" || ret.name[0] >= 'a' && ret.name[0] <= 'z' || ret.name[0] == '_' {
		ret.internal = true
	}
	if jsonTag, ok := xField.Tag.Lookup("json"); ok {
		name := jsonTag
		if index := strings.Index(jsonTag, ","); index != -1 {
			name = jsonTag[:index]
		}
		if name == "-" {
			ret.internal = true
		} else if name != "" {
			ret.wireName = name
		}
	}
	if tag, _ := format.Parse(xField.Tag); tag != nil {
		if tag.Ignore {
			ret.internal = true
		}
		if tag.Name != "" {
			ret.wireName = tag.Name
		}
	}
	if xField.Tag.Get("internal") == "true" {
		ret.internal = true
	}
	return ret
}
