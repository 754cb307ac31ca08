package bridgely

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/viant/bridgely/schema"
	"github.com/viant/bridgely/wire"
)

// collectionConverter assembles ordered sequences: growable slices and
// fixed-arity arrays of any element type, recursing into the registry per
// element. The input drives the output length, never the target.
type collectionConverter struct{}

func (c *collectionConverter) Priority() int {
	return PriorityCollection
}

func (c *collectionConverter) CanConvert(target *schema.Type) bool {
	return target.Kind() == schema.KindSlice || target.Kind() == schema.KindArray
}

// Convert converts each element independently; a failed element takes the
// element default and is reported by index, without aborting siblings.
func (c *collectionConverter) Convert(registry *Registry, value wire.Value, target *schema.Type) (interface{}, error) {
	if value.Kind() != wire.KindList {
		return nil, fmt.Errorf("cannot convert %v to %v", value, target.Type().String())
	}
	items := value.Items()
	elemType := target.Elem()

	var result reflect.Value
	limit := len(items)
	if target.Kind() == schema.KindArray {
		result = reflect.New(target.Type()).Elem()
		if arity := target.Type().Len(); limit > arity {
			limit = arity
		}
	} else {
		result = reflect.MakeSlice(target.Type(), len(items), len(items))
	}

	var issues Issues
	for i := 0; i < limit; i++ {
		element, err := registry.convertValue(items[i], elemType)
		if err != nil {
			var nested Issues
			if errors.As(err, &nested) {
				issues = append(issues, nested.Nest(strconv.Itoa(i))...)
			} else {
				issues = append(issues, issueOf(err, strconv.Itoa(i), CodeInvalidType))
			}
		}
		if element == nil {
			continue
		}
		elemValue := reflect.ValueOf(element)
		if !elemValue.Type().AssignableTo(elemType.Type()) {
			issues = append(issues, &Issue{
				Path:    strconv.Itoa(i),
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("expected %v, had %v", elemType.Type().String(), elemValue.Type().String()),
			})
			continue
		}
		result.Index(i).Set(elemValue)
	}
	if target.Kind() == schema.KindArray && len(items) > limit {
		issues = append(issues, &Issue{
			Code:    CodeOverflow,
			Message: fmt.Sprintf("%v elements exceed array arity %v", len(items), limit),
		})
	}
	if len(issues) > 0 {
		return result.Interface(), issues
	}
	return result.Interface(), nil
}

func (c *collectionConverter) CanSerialize(rType reflect.Type) bool {
	return rType.Kind() == reflect.Slice || rType.Kind() == reflect.Array
}

// Serialize maps each element back through the registry into an ordered
// list.
func (c *collectionConverter) Serialize(registry *Registry, value interface{}) (wire.Value, error) {
	rValue := reflect.ValueOf(value)
	items := make([]wire.Value, rValue.Len())
	for i := 0; i < rValue.Len(); i++ {
		items[i] = registry.Serialize(rValue.Index(i).Interface())
	}
	return wire.List(items...), nil
}
