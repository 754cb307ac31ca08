package wire

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFromInterface(t *testing.T) {
	var testCases = []struct {
		description string
		input       interface{}
		expect      Value
	}{
		{
			description: "null",
			input:       nil,
			expect:      Null,
		},
		{
			description: "number widening",
			input:       int32(3),
			expect:      Number(3),
		},
		{
			description: "nested object",
			input: map[string]interface{}{
				"x": 1.0,
				"tags": []interface{}{
					"a", true,
				},
			},
			expect: Object(map[string]Value{
				"x":    Number(1),
				"tags": List(String("a"), Bool(true)),
			}),
		},
	}

	for _, testCase := range testCases {
		actual, err := FromInterface(testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.True(t, testCase.expect.Equal(actual), testCase.description)
	}
}

func TestFromInterface_Unsupported(t *testing.T) {
	_, err := FromInterface(struct{}{})
	assert.NotNil(t, err)
}

func TestValue_FieldFold(t *testing.T) {
	object := Object(map[string]Value{"Position": Number(1)})
	value, ok := object.FieldFold("position")
	assert.True(t, ok)
	assert.EqualValues(t, 1, value.Float())
	_, ok = object.FieldFold("rotation")
	assert.False(t, ok)
}

func TestValue_Roundtrip(t *testing.T) {
	value := Object(map[string]Value{
		"name":  String("Player"),
		"score": Number(12.5),
		"alive": Bool(true),
		"items": List(Number(1), Number(2)),
		"meta":  Null,
	})
	rebuilt, err := FromInterface(value.Interface())
	assert.Nil(t, err)
	assert.True(t, value.Equal(rebuilt))
}
