package bridgely

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/viant/bridgely/schema"
	"github.com/viant/bridgely/wire"
	"github.com/viant/xunsafe"
)

// compositeConverter is the reflection-driven converter for user-defined
// named composite types, including nested composites and enums inside
// them. Unknown payload keys are ignored; missing keys keep the field
// default.
type compositeConverter struct{}

func (c *compositeConverter) Priority() int {
	return PriorityComposite
}

func (c *compositeConverter) CanConvert(target *schema.Type) bool {
	switch target.Kind() {
	case schema.KindStruct:
		return true
	case schema.KindPtr:
		return target.Type().Elem().Kind() == reflect.Struct
	}
	return false
}

func (c *compositeConverter) Convert(registry *Registry, value wire.Value, target *schema.Type) (interface{}, error) {
	if value.Kind() != wire.KindObject {
		return nil, fmt.Errorf("cannot convert %v to %v", value, target.Type().String())
	}
	structType := target.Type()
	isPtr := structType.Kind() == reflect.Ptr
	if isPtr {
		structType = structType.Elem()
	}
	holder := reflect.New(structType)
	ptr := xunsafe.AsPointer(holder.Interface())

	var issues Issues
	for _, field := range schema.TypeOf(structType).Fields() {
		if field.Internal() {
			continue
		}
		item, ok := value.FieldFold(field.WireName())
		if !ok {
			continue
		}
		converted, err := registry.convertValue(item, field.Type())
		if err != nil {
			var nested Issues
			if errors.As(err, &nested) {
				issues = append(issues, nested.Nest(field.WireName())...)
			} else {
				issues = append(issues, issueOf(err, field.WireName(), CodeInvalidType))
			}
		}
		if converted != nil {
			field.Set(ptr, converted)
		}
	}

	var result interface{}
	if isPtr {
		result = holder.Interface()
	} else {
		result = holder.Elem().Interface()
	}
	if len(issues) > 0 {
		return result, issues
	}
	return result, nil
}

func (c *compositeConverter) CanSerialize(rType reflect.Type) bool {
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	return rType.Kind() == reflect.Struct
}

// Serialize walks declared fields in order, skipping internal ones so
// engine-private state never leaks back to the caller.
func (c *compositeConverter) Serialize(registry *Registry, value interface{}) (wire.Value, error) {
	rType := reflect.TypeOf(value)
	structType := rType
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	ptr := xunsafe.AsPointer(value)
	fields := map[string]wire.Value{}
	for _, field := range schema.TypeOf(structType).Fields() {
		if field.Internal() {
			continue
		}
		fields[field.WireName()] = registry.Serialize(field.Value(ptr))
	}
	return wire.Object(fields), nil
}
