package bridgely

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/bridgely/scene"
	"github.com/viant/bridgely/wire"
)

func vectorPayload(x, y, z float64) wire.Value {
	return wire.Object(map[string]wire.Value{
		"x": wire.Number(x), "y": wire.Number(y), "z": wire.Number(z),
	})
}

func TestCollectionConverter_Convert(t *testing.T) {
	registry := New()

	var testCases = []struct {
		description string
		value       wire.Value
		prototype   interface{}
		expect      interface{}
	}{
		{
			description: "slice of vectors",
			value:       wire.List(vectorPayload(1, 2, 3), vectorPayload(4, 5, 6)),
			prototype:   []scene.Vector3{},
			expect:      []scene.Vector3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}},
		},
		{
			description: "slice of ints",
			value:       wire.List(wire.Number(1), wire.Number(2), wire.Number(3)),
			prototype:   []int{},
			expect:      []int{1, 2, 3},
		},
		{
			description: "empty list",
			value:       wire.List(),
			prototype:   []string{},
			expect:      []string{},
		},
		{
			description: "fixed arity array",
			value:       wire.List(wire.Number(1), wire.Number(2)),
			prototype:   [2]float32{},
			expect:      [2]float32{1, 2},
		},
		{
			description: "null yields nil slice",
			value:       wire.Null,
			prototype:   []int{},
			expect:      []int(nil),
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

func TestCollectionConverter_LengthFollowsInput(t *testing.T) {
	registry := New()

	//a failing element keeps its slot with the element default
	value := wire.List(wire.Number(1), wire.String("oops"), wire.Number(3))
	actual, err := registry.Convert(value, TypeOf([]int{}))
	assert.Nil(t, err)
	assert.Equal(t, []int{1, 0, 3}, actual)

	//try mode reports the failure but still returns the full-length result
	tried, ok := registry.TryConvert(value, TypeOf([]int{}))
	assert.False(t, ok)
	assert.Equal(t, []int{1, 0, 3}, tried)
}

func TestCollectionConverter_ElementIssuePath(t *testing.T) {
	registry := New()
	converter := &collectionConverter{}

	_, err := converter.Convert(registry, wire.List(wire.Number(1), wire.String("oops")), TypeOf([]int{}))
	require.NotNil(t, err)
	var issues Issues
	require.ErrorAs(t, err, &issues)
	require.Equal(t, 1, len(issues))
	assert.Equal(t, "1", issues[0].Path)
}

func TestCollectionConverter_NonList(t *testing.T) {
	registry := New()
	actual, err := registry.Convert(wire.String("abc"), TypeOf([]int{}))
	assert.Nil(t, err)
	assert.Equal(t, []int(nil), actual)

	_, ok := registry.TryConvert(wire.String("abc"), TypeOf([]int{}))
	assert.False(t, ok)
}

func TestCollectionConverter_ArrayOverflow(t *testing.T) {
	registry := New()
	value := wire.List(wire.Number(1), wire.Number(2), wire.Number(3))

	actual, ok := registry.TryConvert(value, TypeOf([2]int{}))
	assert.False(t, ok)
	assert.Equal(t, [2]int{1, 2}, actual)
}

func TestCollectionConverter_Serialize(t *testing.T) {
	registry := New()

	actual := registry.Serialize([]scene.Vector3{{X: 1, Y: 2, Z: 3}})
	expect := wire.List(vectorPayload(1, 2, 3))
	assert.True(t, expect.Equal(actual), actual.String())

	actual = registry.Serialize([2]int{7, 8})
	assert.True(t, wire.List(wire.Number(7), wire.Number(8)).Equal(actual))
}

func TestCollectionConverter_RoundtripLength(t *testing.T) {
	registry := New()
	value := wire.List(vectorPayload(1, 2, 3), vectorPayload(4, 5, 6))
	converted, err := registry.Convert(value, TypeOf([]scene.Vector3{}))
	require.Nil(t, err)
	serialized := registry.Serialize(converted)
	assert.Equal(t, value.Len(), serialized.Len())
	assert.True(t, value.Equal(serialized))
}
