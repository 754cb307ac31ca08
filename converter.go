package bridgely

import (
	"reflect"

	"github.com/viant/bridgely/schema"
	"github.com/viant/bridgely/wire"
)

// Built-in converter priorities, highest first. User converters may
// interpose anywhere; on equal priority the most recent registration wins.
const (
	PriorityReference  = 100
	PriorityStructured = 80
	PriorityMask       = 80
	PriorityEnum       = 60
	PriorityCollection = 40
	PriorityComposite  = 20
	PriorityPrimitive  = 10
)

type (
	// Converter is a single conversion strategy for one family of target
	// types. CanConvert has to be pure; Convert is only invoked after
	// CanConvert returned true for the target and must not partially
	// mutate caller-visible state on failure.
	Converter interface {
		Priority() int
		CanConvert(target *schema.Type) bool
		Convert(registry *Registry, value wire.Value, target *schema.Type) (interface{}, error)
	}

	// Serializer is the inverse capability, dispatched on the runtime
	// type of the value being reported back to the caller.
	Serializer interface {
		CanSerialize(rType reflect.Type) bool
		Serialize(registry *Registry, value interface{}) (wire.Value, error)
	}
)
