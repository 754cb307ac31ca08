package bridgely

import (
	"fmt"
	"reflect"

	"github.com/viant/bridgely/schema"
	"github.com/viant/bridgely/wire"
)

// enumConverter maps strings (case-insensitive member names) or integers
// to a registered enumeration's underlying value.
type enumConverter struct{}

func (c *enumConverter) Priority() int {
	return PriorityEnum
}

func (c *enumConverter) CanConvert(target *schema.Type) bool {
	return target.Kind() == schema.KindEnum
}

func (c *enumConverter) Convert(registry *Registry, value wire.Value, target *schema.Type) (interface{}, error) {
	enum := target.Enum()
	switch value.Kind() {
	case wire.KindString:
		member, ok := enum.Value(value.Text())
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a member of %v", ErrUnknownName, value.Text(), target.Type().String())
		}
		return enum.ValueOf(member), nil
	case wire.KindNumber:
		//any underlying value is accepted, named or not, to permit
		//flag-style or reserved values
		return enum.ValueOf(value.Int()), nil
	}
	return nil, fmt.Errorf("cannot convert %v to enum %v", value, target.Type().String())
}

func (c *enumConverter) CanSerialize(rType reflect.Type) bool {
	_, ok := schema.EnumOf(rType)
	return ok
}

// Serialize emits the member name when the value is named, otherwise the
// raw underlying value.
func (c *enumConverter) Serialize(registry *Registry, value interface{}) (wire.Value, error) {
	enum, _ := schema.EnumOf(reflect.TypeOf(value))
	underlying := enum.Underlying(value)
	if name, ok := enum.Name(underlying); ok {
		return wire.String(name), nil
	}
	return wire.Number(float64(underlying)), nil
}
