package bridgely

import (
	"fmt"
	"reflect"

	"github.com/viant/bridgely/scene"
	"github.com/viant/bridgely/schema"
	"github.com/viant/bridgely/wire"
)

var maskType = reflect.TypeOf(scene.LayerMask(0))

// maskConverter converts integers, layer names, comma-separated name
// lists and {value,names} maps into a layer bitmask.
type maskConverter struct {
	layers *scene.LayerTable
}

func newMaskConverter(layers *scene.LayerTable) *maskConverter {
	return &maskConverter{layers: layers}
}

func (c *maskConverter) Priority() int {
	return PriorityMask
}

func (c *maskConverter) CanConvert(target *schema.Type) bool {
	return target.Type() == maskType
}

func (c *maskConverter) Convert(registry *Registry, value wire.Value, target *schema.Type) (interface{}, error) {
	switch value.Kind() {
	case wire.KindNumber:
		return scene.LayerMask(value.Int()), nil
	case wire.KindString:
		return c.fromNames(matchNames(value.Text()))
	case wire.KindObject:
		//an explicit raw value takes precedence over the name list
		if raw, ok := value.FieldFold("value"); ok && raw.Kind() == wire.KindNumber {
			return scene.LayerMask(raw.Int()), nil
		}
		names, ok := value.FieldFold("names")
		if !ok {
			names, ok = value.FieldFold("layers")
		}
		if ok && names.Kind() == wire.KindList {
			var list []string
			for _, item := range names.Items() {
				if item.Kind() != wire.KindString {
					return nil, fmt.Errorf("layer name has to be a string, had: %v", item)
				}
				list = append(list, item.Text())
			}
			return c.fromNames(list)
		}
		return nil, fmt.Errorf("mask map requires a value or names field, had: %v", value)
	}
	return nil, fmt.Errorf("cannot convert %v to layer mask", value)
}

func (c *maskConverter) fromNames(names []string) (interface{}, error) {
	var ret scene.LayerMask
	for _, name := range names {
		bit, ok := c.layers.Bit(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a known layer", ErrUnknownName, name)
		}
		ret |= 1 << bit
	}
	return ret, nil
}

func (c *maskConverter) CanSerialize(rType reflect.Type) bool {
	return rType == maskType
}

// Serialize emits both the raw integer and the decoded name list so round
// trips through names stay lossless.
func (c *maskConverter) Serialize(registry *Registry, value interface{}) (wire.Value, error) {
	mask := value.(scene.LayerMask)
	names := c.layers.Names(mask)
	items := make([]wire.Value, len(names))
	for i, name := range names {
		items[i] = wire.String(name)
	}
	return wire.Object(map[string]wire.Value{
		"value": wire.Number(float64(mask)),
		"names": wire.List(items...),
	}), nil
}
