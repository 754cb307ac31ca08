// Package schema derives read-only target type descriptors from the host
// model's reflective type information. Descriptors are built once per
// reflect.Type and cached for the process lifetime.
package schema

import (
	"reflect"
	"strings"
	"sync"

	"github.com/viant/xunsafe"
)

// Kind classifies a target type for conversion dispatch.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindEnum
	KindSlice
	KindArray
	KindStruct
	KindPtr
	KindInterface
	KindMap
)

// Type describes the destination type of a conversion.
type Type struct {
	rType   reflect.Type
	kind    Kind
	enum    *Enum
	xStruct *xunsafe.Struct
	fields  []*Field
	once    sync.Once
}

var types sync.Map // map[reflect.Type]*Type

// TypeOf returns a cached descriptor for the supplied reflect type.
func TypeOf(rType reflect.Type) *Type {
	if value, ok := types.Load(rType); ok {
		return value.(*Type)
	}
	ret := &Type{rType: rType, kind: kindOf(rType)}
	if enum, ok := EnumOf(rType); ok {
		ret.kind = KindEnum
		ret.enum = enum
	}
	if actual, loaded := types.LoadOrStore(rType, ret); loaded {
		return actual.(*Type)
	}
	return ret
}

// Kind returns the descriptor kind.
func (t *Type) Kind() Kind {
	return t.kind
}

// Type returns the underlying reflect type.
func (t *Type) Type() reflect.Type {
	return t.rType
}

// Elem returns the element descriptor for slice, array and pointer kinds.
func (t *Type) Elem() *Type {
	switch t.kind {
	case KindSlice, KindArray, KindPtr:
		return TypeOf(t.rType.Elem())
	}
	return nil
}

// Enum returns the enum descriptor for enum kinds.
func (t *Type) Enum() *Enum {
	return t.enum
}

// Fields returns composite field descriptors in declared order; nil for
// non-struct kinds. Fields are built lazily so self-referential composites
// do not recurse at descriptor construction.
func (t *Type) Fields() []*Field {
	structType := t.rType
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil
	}
	t.once.Do(func() {
		t.xStruct = xunsafe.NewStruct(structType)
		t.fields = make([]*Field, 0, len(t.xStruct.Fields))
		for i := range t.xStruct.Fields {
			t.fields = append(t.fields, newField(&t.xStruct.Fields[i]))
		}
	})
	return t.fields
}

// Field returns a composite field matched by wire name, case-insensitively.
func (t *Type) Field(name string) *Field {
	for _, field := range t.Fields() {
		if field.wireName == name || strings.EqualFold(field.wireName, name) {
			return field
		}
	}
	return nil
}

// Zero returns the type default value.
func (t *Type) Zero() interface{} {
	if t.enum != nil {
		return t.enum.Zero()
	}
	return reflect.Zero(t.rType).Interface()
}

// ResetTypes drops all cached descriptors; used by test setup.
func ResetTypes() {
	types.Range(func(key, _ interface{}) bool {
		types.Delete(key)
		return true
	})
}

func kindOf(rType reflect.Type) Kind {
	switch rType.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Slice:
		return KindSlice
	case reflect.Array:
		return KindArray
	case reflect.Struct:
		return KindStruct
	case reflect.Ptr:
		return KindPtr
	case reflect.Interface:
		return KindInterface
	case reflect.Map:
		return KindMap
	}
	return KindInvalid
}
