// Package codec translates between raw payload bytes and wire values.
package codec

import (
	"strconv"

	"github.com/francoispqt/gojay"
	"github.com/goccy/go-json"

	"github.com/viant/bridgely/wire"
)

// DecodeJSON decodes a JSON document into a wire value.
func DecodeJSON(data []byte) (wire.Value, error) {
	var holder interface{}
	if err := json.Unmarshal(data, &holder); err != nil {
		return wire.Null, err
	}
	return wire.FromInterface(holder)
}

// EncodeJSON encodes a wire value as JSON; object keys are emitted in
// lexical order for stable output.
func EncodeJSON(value wire.Value) ([]byte, error) {
	switch value.Kind() {
	case wire.KindNull:
		return []byte("null"), nil
	case wire.KindBool:
		return strconv.AppendBool(nil, value.Bool()), nil
	case wire.KindNumber:
		return appendNumber(nil, value.Float()), nil
	case wire.KindString:
		return gojay.Marshal(value.Text())
	case wire.KindList:
		return gojay.MarshalJSONArray(jsonList{value})
	case wire.KindObject:
		return gojay.MarshalJSONObject(jsonObject{value})
	}
	return []byte("null"), nil
}

type jsonObject struct {
	value wire.Value
}

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (o jsonObject) MarshalJSONObject(enc *gojay.Encoder) {
	for _, key := range o.value.Keys() {
		item, _ := o.value.Field(key)
		switch item.Kind() {
		case wire.KindNull:
			enc.AddNullKey(key)
		case wire.KindBool:
			enc.AddBoolKey(key, item.Bool())
		case wire.KindNumber:
			enc.AddEmbeddedJSONKey(key, embeddedNumber(item.Float()))
		case wire.KindString:
			enc.AddStringKey(key, item.Text())
		case wire.KindList:
			enc.AddArrayKey(key, jsonList{item})
		case wire.KindObject:
			enc.AddObjectKey(key, jsonObject{item})
		}
	}
}

// IsNil implements gojay.MarshalerJSONObject.
func (o jsonObject) IsNil() bool {
	return o.value.Fields() == nil
}

type jsonList struct {
	value wire.Value
}

// MarshalJSONArray implements gojay.MarshalerJSONArray.
func (l jsonList) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range l.value.Items() {
		switch item.Kind() {
		case wire.KindNull:
			enc.AddNull()
		case wire.KindBool:
			enc.AddBool(item.Bool())
		case wire.KindNumber:
			enc.AddEmbeddedJSON(embeddedNumber(item.Float()))
		case wire.KindString:
			enc.AddString(item.Text())
		case wire.KindList:
			enc.AddArray(jsonList{item})
		case wire.KindObject:
			enc.AddObject(jsonObject{item})
		}
	}
}

// IsNil implements gojay.MarshalerJSONArray.
func (l jsonList) IsNil() bool {
	return l.value.Items() == nil
}

func embeddedNumber(value float64) *gojay.EmbeddedJSON {
	ret := gojay.EmbeddedJSON(appendNumber(nil, value))
	return &ret
}

// appendNumber formats wire numbers, keeping a trailing decimal on
// integral values so they read back as floats.
func appendNumber(dst []byte, value float64) []byte {
	if value == float64(int64(value)) {
		return strconv.AppendFloat(dst, value, 'f', 1, 64)
	}
	return strconv.AppendFloat(dst, value, 'f', -1, 64)
}
