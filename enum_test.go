package bridgely

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/bridgely/schema"
	"github.com/viant/bridgely/wire"
)

type ordinal int

const (
	ordinalNone ordinal = iota
	ordinalFirst
	ordinalSecond
)

func registerOrdinal(t *testing.T) {
	_, err := schema.RegisterEnum(ordinal(0),
		schema.Member{Name: "None", Value: 0},
		schema.Member{Name: "First", Value: 1},
		schema.Member{Name: "Second", Value: 2},
	)
	require.Nil(t, err)
}

func TestEnumConverter_Convert(t *testing.T) {
	registerOrdinal(t)
	registry := New()

	var testCases = []struct {
		description string
		value       wire.Value
		expect      ordinal
	}{
		{description: "member name", value: wire.String("Second"), expect: ordinalSecond},
		{description: "name is case-insensitive", value: wire.String("SECOND"), expect: ordinalSecond},
		{description: "underlying value", value: wire.Number(1), expect: ordinalFirst},
		{description: "unnamed underlying value", value: wire.Number(9), expect: ordinal(9)},
		{description: "null yields zero member", value: wire.Null, expect: ordinalNone},
	}
	for _, testCase := range testCases {
		actual, err := registry.Convert(testCase.value, TypeOf(ordinal(0)))
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestEnumConverter_UnknownName(t *testing.T) {
	registerOrdinal(t)
	registry := New()

	actual, err := registry.Convert(wire.String("Third"), TypeOf(ordinal(0)))
	assert.ErrorIs(t, err, ErrUnknownName)
	assert.Equal(t, ordinalNone, actual)

	_, ok := registry.TryConvert(wire.String("Third"), TypeOf(ordinal(0)))
	assert.False(t, ok)
}

func TestEnumConverter_NullEqualsZero(t *testing.T) {
	registerOrdinal(t)
	registry := New()

	fromNull, err := registry.Convert(wire.Null, TypeOf(ordinal(0)))
	require.Nil(t, err)
	fromZero, err := registry.Convert(wire.Number(0), TypeOf(ordinal(0)))
	require.Nil(t, err)
	assert.Equal(t, fromNull, fromZero)
}

func TestEnumConverter_Serialize(t *testing.T) {
	registerOrdinal(t)
	registry := New()

	assert.True(t, wire.String("Second").Equal(registry.Serialize(ordinalSecond)))
	assert.True(t, wire.Number(9).Equal(registry.Serialize(ordinal(9))))
}
