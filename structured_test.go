package bridgely

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/bridgely/scene"
	"github.com/viant/bridgely/wire"
)

func TestStructuredConverter_Convert(t *testing.T) {
	registry := New()

	var testCases = []struct {
		description string
		value       wire.Value
		prototype   interface{}
		expect      interface{}
	}{
		{
			description: "vector3 from field map",
			value: wire.Object(map[string]wire.Value{
				"x": wire.Number(1), "y": wire.Number(2), "z": wire.Number(3),
			}),
			prototype: scene.Vector3{},
			expect:    scene.Vector3{X: 1, Y: 2, Z: 3},
		},
		{
			description: "missing vector components default to zero",
			value:       wire.Object(map[string]wire.Value{"y": wire.Number(5)}),
			prototype:   scene.Vector3{},
			expect:      scene.Vector3{Y: 5},
		},
		{
			description: "field names fold case",
			value:       wire.Object(map[string]wire.Value{"X": wire.Number(4)}),
			prototype:   scene.Vector2{},
			expect:      scene.Vector2{X: 4},
		},
		{
			description: "missing alpha defaults to opaque",
			value: wire.Object(map[string]wire.Value{
				"r": wire.Number(1), "g": wire.Number(0.5), "b": wire.Number(0),
			}),
			prototype: scene.Color{},
			expect:    scene.Color{R: 1, G: 0.5, A: 1},
		},
		{
			description: "missing quaternion w defaults to identity",
			value:       wire.Object(map[string]wire.Value{"x": wire.Number(0)}),
			prototype:   scene.Quaternion{},
			expect:      scene.Quaternion{W: 1},
		},
		{
			description: "rect from field map",
			value: wire.Object(map[string]wire.Value{
				"x": wire.Number(1), "y": wire.Number(2), "width": wire.Number(3), "height": wire.Number(4),
			}),
			prototype: scene.Rect{},
			expect:    scene.Rect{X: 1, Y: 2, Width: 3, Height: 4},
		},
		{
			description: "color symbolic constant",
			value:       wire.String("Red"),
			prototype:   scene.Color{},
			expect:      scene.Color{R: 1, A: 1},
		},
		{
			description: "vector symbolic constant",
			value:       wire.String("up"),
			prototype:   scene.Vector3{},
			expect:      scene.Vector3{Y: 1},
		},
		{
			description: "null yields zero value",
			value:       wire.Null,
			prototype:   scene.Vector3{},
			expect:      scene.Vector3{},
		},
	}

	for _, testCase := range testCases {
		actual, err := registry.Convert(testCase.value, TypeOf(testCase.prototype))
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestStructuredConverter_UnknownSymbol(t *testing.T) {
	registry := New()
	actual, err := registry.Convert(wire.String("ultraviolet"), TypeOf(scene.Color{}))
	assert.ErrorIs(t, err, ErrUnknownName)
	assert.Equal(t, scene.Color{}, actual)
}

func TestStructuredConverter_MalformedField(t *testing.T) {
	registry := New()
	value := wire.Object(map[string]wire.Value{"x": wire.String("abc")})

	actual, err := registry.Convert(value, TypeOf(scene.Vector3{}))
	assert.Nil(t, err) //degrades to the default, logged not raised
	assert.Equal(t, scene.Vector3{}, actual)

	_, ok := registry.TryConvert(value, TypeOf(scene.Vector3{}))
	assert.False(t, ok)
}

func TestStructuredConverter_Roundtrip(t *testing.T) {
	registry := New()

	var testCases = []struct {
		description string
		value       interface{}
	}{
		{description: "vector3", value: scene.Vector3{X: 1, Y: 2, Z: 3}},
		{description: "vector4", value: scene.Vector4{X: 1, Y: 2, Z: 3, W: 4}},
		{description: "color", value: scene.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}},
		{description: "quaternion", value: scene.Quaternion{W: 1}},
		{description: "rect", value: scene.Rect{X: 1, Y: 2, Width: 3, Height: 4}},
	}
	for _, testCase := range testCases {
		serialized := registry.Serialize(testCase.value)
		require.Equal(t, wire.KindObject, serialized.Kind(), testCase.description)
		rebuilt, err := registry.Convert(serialized, TypeOf(testCase.value))
		require.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.value, rebuilt, testCase.description)
	}
}

func TestStructuredConverter_SerializeVector(t *testing.T) {
	registry := New()
	expect := wire.Object(map[string]wire.Value{
		"x": wire.Number(1), "y": wire.Number(2), "z": wire.Number(3),
	})
	assert.True(t, expect.Equal(registry.Serialize(scene.Vector3{X: 1, Y: 2, Z: 3})))
}
