package bridgely

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/viant/bridgely/schema"
	"github.com/viant/bridgely/wire"
)

// primitiveConverter coerces wire scalars into bool, integer, float and
// string targets, widening or narrowing numeric representations as
// needed.
type primitiveConverter struct{}

func (c *primitiveConverter) Priority() int {
	return PriorityPrimitive
}

func (c *primitiveConverter) CanConvert(target *schema.Type) bool {
	switch target.Kind() {
	case schema.KindBool, schema.KindInt, schema.KindUint, schema.KindFloat, schema.KindString:
		return true
	}
	return false
}

func (c *primitiveConverter) Convert(registry *Registry, value wire.Value, target *schema.Type) (interface{}, error) {
	switch target.Kind() {
	case schema.KindBool:
		return c.toBool(value, target)
	case schema.KindInt:
		return c.toInt(value, target)
	case schema.KindUint:
		return c.toUint(value, target)
	case schema.KindFloat:
		return c.toFloat(value, target)
	case schema.KindString:
		return c.toString(value, target)
	}
	return nil, fmt.Errorf("unsupported primitive kind: %v", target.Type().String())
}

func (c *primitiveConverter) toBool(value wire.Value, target *schema.Type) (interface{}, error) {
	var result bool
	switch value.Kind() {
	case wire.KindBool:
		result = value.Bool()
	case wire.KindNumber:
		result = value.Float() != 0
	case wire.KindString:
		parsed, err := strconv.ParseBool(value.Text())
		if err != nil {
			if f, fErr := strconv.ParseFloat(value.Text(), 64); fErr == nil {
				parsed = f != 0
			} else {
				return nil, err
			}
		}
		result = parsed
	default:
		return nil, fmt.Errorf("cannot convert %v to bool", value)
	}
	return typed(reflect.ValueOf(result), target), nil
}

func (c *primitiveConverter) toInt(value wire.Value, target *schema.Type) (interface{}, error) {
	var result int64
	switch value.Kind() {
	case wire.KindNumber:
		result = value.Int()
	case wire.KindBool:
		if value.Bool() {
			result = 1
		}
	case wire.KindString:
		var err error
		if strings.Contains(value.Text(), ".") {
			var f float64
			f, err = strconv.ParseFloat(value.Text(), 64)
			result = int64(f)
		} else {
			result, err = strconv.ParseInt(value.Text(), 0, 64)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("cannot convert %v to int", value)
	}
	return typed(reflect.ValueOf(result), target), nil
}

func (c *primitiveConverter) toUint(value wire.Value, target *schema.Type) (interface{}, error) {
	var result uint64
	switch value.Kind() {
	case wire.KindNumber:
		if value.Float() < 0 {
			return nil, fmt.Errorf("cannot convert negative value %v to unsigned int", value.Float())
		}
		result = uint64(value.Float())
	case wire.KindBool:
		if value.Bool() {
			result = 1
		}
	case wire.KindString:
		var err error
		result, err = strconv.ParseUint(value.Text(), 0, 64)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("cannot convert %v to uint", value)
	}
	return typed(reflect.ValueOf(result), target), nil
}

func (c *primitiveConverter) toFloat(value wire.Value, target *schema.Type) (interface{}, error) {
	var result float64
	switch value.Kind() {
	case wire.KindNumber:
		result = value.Float()
	case wire.KindBool:
		if value.Bool() {
			result = 1
		}
	case wire.KindString:
		var err error
		result, err = strconv.ParseFloat(value.Text(), 64)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("cannot convert %v to float", value)
	}
	return typed(reflect.ValueOf(result), target), nil
}

func (c *primitiveConverter) toString(value wire.Value, target *schema.Type) (interface{}, error) {
	var result string
	switch value.Kind() {
	case wire.KindString:
		result = value.Text()
	case wire.KindBool:
		result = strconv.FormatBool(value.Bool())
	case wire.KindNumber:
		result = strconv.FormatFloat(value.Float(), 'f', -1, 64)
	default:
		return nil, fmt.Errorf("cannot convert %v to string", value)
	}
	return typed(reflect.ValueOf(result), target), nil
}

func (c *primitiveConverter) CanSerialize(rType reflect.Type) bool {
	if _, ok := schema.EnumOf(rType); ok {
		return false
	}
	switch rType.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Serialize passes primitives through, widening numerics to the canonical
// wire number.
func (c *primitiveConverter) Serialize(registry *Registry, value interface{}) (wire.Value, error) {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Bool:
		return wire.Bool(rValue.Bool()), nil
	case reflect.String:
		return wire.String(rValue.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return wire.Number(float64(rValue.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return wire.Number(float64(rValue.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return wire.Number(rValue.Float()), nil
	}
	return wire.Null, fmt.Errorf("unsupported primitive: %v", rValue.Type().String())
}

// typed narrows a coerced scalar to the declared target type, preserving
// named primitive types.
func typed(rValue reflect.Value, target *schema.Type) interface{} {
	if rValue.Type() == target.Type() {
		return rValue.Interface()
	}
	return rValue.Convert(target.Type()).Interface()
}
