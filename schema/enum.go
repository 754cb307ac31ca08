package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type (
	// Member represents a named enum member.
	Member struct {
		Name  string
		Value int64
	}

	// Enum describes a registered enumeration: a named integer type with
	// its name/value pairs. Lookup by name is case-insensitive.
	Enum struct {
		rType   reflect.Type
		members []Member
		byFold  map[string]int64
		byValue map[int64]string
	}
)

var enums sync.Map // map[reflect.Type]*Enum

// RegisterEnum registers an enumeration for the prototype's type. Members
// are declared in order; the first name registered for a value wins on
// reverse lookup.
func RegisterEnum(prototype interface{}, members ...Member) (*Enum, error) {
	rType := reflect.TypeOf(prototype)
	if rType == nil {
		return nil, fmt.Errorf("enum prototype was nil")
	}
	switch rType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return nil, fmt.Errorf("enum underlying type has to be integer, had: %s", rType.String())
	}
	ret := &Enum{
		rType:   rType,
		members: members,
		byFold:  make(map[string]int64, len(members)),
		byValue: make(map[int64]string, len(members)),
	}
	for _, member := range members {
		ret.byFold[strings.ToLower(member.Name)] = member.Value
		if _, ok := ret.byValue[member.Value]; !ok {
			ret.byValue[member.Value] = member.Name
		}
	}
	enums.Store(rType, ret)
	types.Delete(rType)
	return ret, nil
}

// EnumOf returns the enum registered for the supplied type.
func EnumOf(rType reflect.Type) (*Enum, bool) {
	value, ok := enums.Load(rType)
	if !ok {
		return nil, false
	}
	return value.(*Enum), true
}

// ResetEnums drops all registered enums; used by test setup.
func ResetEnums() {
	enums.Range(func(key, _ interface{}) bool {
		enums.Delete(key)
		types.Delete(key)
		return true
	})
}

// Type returns the enum underlying reflect type.
func (e *Enum) Type() reflect.Type {
	return e.rType
}

// Members returns declared members in registration order.
func (e *Enum) Members() []Member {
	return e.members
}

// Value returns the underlying value for a member name, matched
// case-insensitively.
func (e *Enum) Value(name string) (int64, bool) {
	value, ok := e.byFold[strings.ToLower(name)]
	return value, ok
}

// Name returns the member name for an underlying value.
func (e *Enum) Name(value int64) (string, bool) {
	name, ok := e.byValue[value]
	return name, ok
}

// ValueOf returns a typed enum value for the supplied underlying value,
// whether named or not.
func (e *Enum) ValueOf(value int64) interface{} {
	ret := reflect.New(e.rType).Elem()
	switch e.rType.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ret.SetUint(uint64(value))
	default:
		ret.SetInt(value)
	}
	return ret.Interface()
}

// Underlying returns the underlying integer value of a typed enum value.
func (e *Enum) Underlying(value interface{}) int64 {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rValue.Uint())
	default:
		return rValue.Int()
	}
}

// Zero returns the conventional default: the zero-valued member, even when
// unnamed.
func (e *Enum) Zero() interface{} {
	return e.ValueOf(0)
}
