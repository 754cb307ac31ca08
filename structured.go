package bridgely

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/bridgely/scene"
	"github.com/viant/bridgely/schema"
	"github.com/viant/bridgely/wire"
	"github.com/viant/xunsafe"
)

type (
	// structuredConverter converts field maps and symbolic string
	// constants into fixed-shape built-in value types (vectors, colors,
	// rotations, rectangles) and back.
	structuredConverter struct {
		types map[reflect.Type]*structuredType
	}

	structuredType struct {
		rType    reflect.Type
		xStruct  *xunsafe.Struct
		defaults map[string]float64
		symbols  map[string]interface{}
	}
)

func newStructuredConverter() *structuredConverter {
	ret := &structuredConverter{types: map[reflect.Type]*structuredType{}}
	ret.register(scene.Vector2{}, nil, map[string]interface{}{
		"zero":  scene.Vector2{},
		"one":   scene.Vector2{X: 1, Y: 1},
		"up":    scene.Vector2{Y: 1},
		"down":  scene.Vector2{Y: -1},
		"left":  scene.Vector2{X: -1},
		"right": scene.Vector2{X: 1},
	})
	ret.register(scene.Vector3{}, nil, map[string]interface{}{
		"zero":    scene.Vector3{},
		"one":     scene.Vector3{X: 1, Y: 1, Z: 1},
		"up":      scene.Vector3{Y: 1},
		"down":    scene.Vector3{Y: -1},
		"left":    scene.Vector3{X: -1},
		"right":   scene.Vector3{X: 1},
		"forward": scene.Vector3{Z: 1},
		"back":    scene.Vector3{Z: -1},
	})
	ret.register(scene.Vector4{}, nil, map[string]interface{}{
		"zero": scene.Vector4{},
		"one":  scene.Vector4{X: 1, Y: 1, Z: 1, W: 1},
	})
	//a missing w keeps the rotation normalizable
	ret.register(scene.Quaternion{}, map[string]float64{"w": 1}, map[string]interface{}{
		"identity": scene.Quaternion{W: 1},
	})
	//a missing alpha defaults to fully opaque
	ret.register(scene.Color{}, map[string]float64{"a": 1}, map[string]interface{}{
		"red":     scene.Color{R: 1, A: 1},
		"green":   scene.Color{G: 1, A: 1},
		"blue":    scene.Color{B: 1, A: 1},
		"white":   scene.Color{R: 1, G: 1, B: 1, A: 1},
		"black":   scene.Color{A: 1},
		"yellow":  scene.Color{R: 1, G: 1, A: 1},
		"cyan":    scene.Color{G: 1, B: 1, A: 1},
		"magenta": scene.Color{R: 1, B: 1, A: 1},
		"gray":    scene.Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		"grey":    scene.Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		"clear":   scene.Color{},
	})
	ret.register(scene.Rect{}, nil, map[string]interface{}{
		"zero": scene.Rect{},
	})
	return ret
}

func (c *structuredConverter) register(prototype interface{}, defaults map[string]float64, symbols map[string]interface{}) {
	rType := reflect.TypeOf(prototype)
	c.types[rType] = &structuredType{
		rType:    rType,
		xStruct:  xunsafe.NewStruct(rType),
		defaults: defaults,
		symbols:  symbols,
	}
}

func (c *structuredConverter) Priority() int {
	return PriorityStructured
}

func (c *structuredConverter) CanConvert(target *schema.Type) bool {
	_, ok := c.types[target.Type()]
	return ok
}

func (c *structuredConverter) Convert(registry *Registry, value wire.Value, target *schema.Type) (interface{}, error) {
	structured := c.types[target.Type()]
	switch value.Kind() {
	case wire.KindString:
		symbol, ok := structured.symbols[strings.ToLower(value.Text())]
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a known %v constant", ErrUnknownName, value.Text(), target.Type().String())
		}
		return symbol, nil
	case wire.KindObject:
		return structured.fromFields(value)
	}
	return nil, fmt.Errorf("cannot convert %v to %v", value, target.Type().String())
}

func (s *structuredType) fromFields(value wire.Value) (interface{}, error) {
	holder := reflect.New(s.rType)
	ptr := xunsafe.AsPointer(holder.Interface())
	for i := range s.xStruct.Fields {
		field := &s.xStruct.Fields[i]
		name := strings.ToLower(field.Name)
		component, ok := value.FieldFold(name)
		if !ok {
			field.SetFloat32(ptr, float32(s.defaults[name]))
			continue
		}
		if component.Kind() != wire.KindNumber {
			return nil, fmt.Errorf("field %v of %v has to be a number, had: %v", name, s.rType.String(), component)
		}
		field.SetFloat32(ptr, float32(component.Float()))
	}
	return holder.Elem().Interface(), nil
}

func (c *structuredConverter) CanSerialize(rType reflect.Type) bool {
	_, ok := c.types[rType]
	return ok
}

// Serialize emits a field map keyed by lowercased component names.
func (c *structuredConverter) Serialize(registry *Registry, value interface{}) (wire.Value, error) {
	structured := c.types[reflect.TypeOf(value)]
	ptr := xunsafe.AsPointer(value)
	fields := make(map[string]wire.Value, len(structured.xStruct.Fields))
	for i := range structured.xStruct.Fields {
		field := &structured.xStruct.Fields[i]
		fields[strings.ToLower(field.Name)] = wire.Number(float64(field.Float32(ptr)))
	}
	return wire.Object(fields), nil
}
