package bridgely

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/viant/bridgely/scene"
	"github.com/viant/bridgely/schema"
	"github.com/viant/bridgely/wire"
)

type (
	// Registry owns the priority-ordered, open-ended converter set and
	// performs type-directed dispatch between wire values and typed host
	// values.
	Registry struct {
		converters []Converter
		world      *scene.World
		assets     scene.Assets
		layers     *scene.LayerTable
		logger     *slog.Logger
	}

	registryOptions struct {
		world  *scene.World
		assets scene.Assets
		layers *scene.LayerTable
		logger *slog.Logger
	}

	//Option represents a registry option
	Option func(o *registryOptions)
)

// WithWorld sets the live hierarchy queried by reference resolution.
func WithWorld(world *scene.World) Option {
	return func(o *registryOptions) {
		o.world = world
	}
}

// WithAssets sets the persisted asset store.
func WithAssets(assets scene.Assets) Option {
	return func(o *registryOptions) {
		o.assets = assets
	}
}

// WithLayers sets the layer name table used by mask conversion.
func WithLayers(layers *scene.LayerTable) Option {
	return func(o *registryOptions) {
		o.layers = layers
	}
}

// WithLogger sets the logger used to report unconverted values.
func WithLogger(logger *slog.Logger) Option {
	return func(o *registryOptions) {
		o.logger = logger
	}
}

// New creates a registry with the built-in converter set.
func New(opts ...Option) *Registry {
	options := &registryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.world == nil {
		options.world = scene.NewWorld()
	}
	if options.layers == nil {
		options.layers = scene.DefaultLayers()
	}
	if options.logger == nil {
		options.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ret := &Registry{
		world:  options.world,
		assets: options.assets,
		layers: options.layers,
		logger: options.logger,
	}
	builtins := []Converter{
		&primitiveConverter{},
		&compositeConverter{},
		&collectionConverter{},
		&enumConverter{},
		newMaskConverter(options.layers),
		newStructuredConverter(),
		newReferenceConverter(options.world, options.assets),
	}
	for _, converter := range builtins {
		ret.Register(converter)
	}
	return ret
}

// World returns the live hierarchy.
func (r *Registry) World() *scene.World {
	return r.world
}

// Assets returns the persisted asset store; nil when unconfigured.
func (r *Registry) Assets() scene.Assets {
	return r.assets
}

// Layers returns the layer name table.
func (r *Registry) Layers() *scene.LayerTable {
	return r.layers
}

// Register inserts a converter before all converters with priority lower
// than or equal to its own, so ties resolve toward the newest
// registration.
func (r *Registry) Register(converter Converter) {
	index := len(r.converters)
	for i, candidate := range r.converters {
		if candidate.Priority() <= converter.Priority() {
			index = i
			break
		}
	}
	r.converters = append(r.converters, nil)
	copy(r.converters[index+1:], r.converters[index:])
	r.converters[index] = converter
}

// Converters returns the registered converters in dispatch order.
func (r *Registry) Converters() []Converter {
	return r.converters
}

// Convert turns a wire value into a typed value for the target type. Null
// converts to the type default. When no converter applies, or the chosen
// converter cannot parse the input, the result degrades to the type
// default and the call is logged rather than failed; only vocabulary
// errors (ErrUnknownName) propagate. Once a converter is chosen no
// fallback to a lower-priority one occurs.
func (r *Registry) Convert(value wire.Value, target *schema.Type) (interface{}, error) {
	result, err := r.convertValue(value, target)
	if err != nil {
		if result == nil {
			result = target.Zero()
		}
		if errors.Is(err, ErrUnknownName) {
			return result, err
		}
		r.logger.Warn("unconverted value", "target", target.Type().String(), "error", err)
		return result, nil
	}
	return result, nil
}

// TryConvert converts like Convert but reports failure instead of
// silently defaulting, supporting callers that track per-field success.
// Partial results (e.g. a collection with failed elements) are still
// returned alongside the failure flag.
func (r *Registry) TryConvert(value wire.Value, target *schema.Type) (interface{}, bool) {
	result, err := r.convertValue(value, target)
	if err != nil {
		if result == nil {
			result = target.Zero()
		}
		r.logger.Debug("conversion failed", "target", target.Type().String(), "error", err)
		return result, false
	}
	return result, true
}

// convertValue is the raw resolution shared by Convert, TryConvert and
// recursive converter calls: no default substitution beyond null, errors
// surface to the caller.
func (r *Registry) convertValue(value wire.Value, target *schema.Type) (interface{}, error) {
	if value.IsNull() {
		return target.Zero(), nil
	}
	converter := r.converterFor(target)
	if converter == nil {
		return target.Zero(), &Issue{
			Code:    CodeNoConverter,
			Message: fmt.Sprintf("no converter for %v", target.Type().String()),
		}
	}
	return converter.Convert(r, value, target)
}

// Serialize turns a typed value back into its wire representation,
// dispatching on the value runtime type. Nil and unserializable values
// yield null.
func (r *Registry) Serialize(value interface{}) wire.Value {
	if value == nil {
		return wire.Null
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map:
		if rValue.IsNil() {
			return wire.Null
		}
	}
	rType := rValue.Type()
	for _, converter := range r.converters {
		serializer, ok := converter.(Serializer)
		if !ok || !serializer.CanSerialize(rType) {
			continue
		}
		ret, err := serializer.Serialize(r, value)
		if err != nil {
			r.logger.Warn("unserialized value", "type", rType.String(), "error", err)
			return wire.Null
		}
		return ret
	}
	r.logger.Warn("unserialized value: no serializer", "type", rType.String())
	return wire.Null
}

func (r *Registry) converterFor(target *schema.Type) Converter {
	for _, converter := range r.converters {
		if converter.CanConvert(target) {
			return converter
		}
	}
	return nil
}

var defaultRegistry atomic.Pointer[Registry]
var defaultMux sync.Mutex

// Default returns the process-wide registry, created lazily with the
// built-in converter set.
func Default() *Registry {
	if registry := defaultRegistry.Load(); registry != nil {
		return registry
	}
	defaultMux.Lock()
	defer defaultMux.Unlock()
	if registry := defaultRegistry.Load(); registry != nil {
		return registry
	}
	registry := New()
	defaultRegistry.Store(registry)
	return registry
}

// Configure replaces the process-wide registry with one built from the
// supplied options.
func Configure(opts ...Option) *Registry {
	defaultMux.Lock()
	defer defaultMux.Unlock()
	registry := New(opts...)
	defaultRegistry.Store(registry)
	return registry
}

// Reset drops the process-wide registry, including all custom
// registrations; the next use recreates the built-in set. Used by test
// setup.
func Reset() {
	defaultMux.Lock()
	defer defaultMux.Unlock()
	defaultRegistry.Store(nil)
}

// TypeOf returns the target type descriptor for the prototype's type.
func TypeOf(prototype interface{}) *schema.Type {
	return schema.TypeOf(reflect.TypeOf(prototype))
}

// Convert converts using the process-wide registry.
func Convert(value wire.Value, target *schema.Type) (interface{}, error) {
	return Default().Convert(value, target)
}

// TryConvert converts using the process-wide registry.
func TryConvert(value wire.Value, target *schema.Type) (interface{}, bool) {
	return Default().TryConvert(value, target)
}

// Serialize serializes using the process-wide registry.
func Serialize(value interface{}) wire.Value {
	return Default().Serialize(value)
}

// Register registers a converter with the process-wide registry.
func Register(converter Converter) {
	Default().Register(converter)
}
