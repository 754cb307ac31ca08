package bridgely

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/bridgely/scene"
	"github.com/viant/bridgely/schema"
	"github.com/viant/bridgely/wire"
)

// AssetPrefix is the persisted-storage root marker; paths starting with it
// are classified as asset paths, everything else as live-hierarchy paths.
const AssetPrefix = "Assets/"

// RefMarker is the object key carrying an explicit reference path.
const RefMarker = "$ref"

var (
	nodeType      = reflect.TypeOf(&scene.Node{})
	componentType = reflect.TypeOf((*scene.Component)(nil)).Elem()
	assetType     = reflect.TypeOf((*scene.Asset)(nil)).Elem()
)

// referenceConverter resolves values denoting other objects in the host
// model: nodes and components in the live hierarchy (including inactive
// nodes) and persisted assets. A resolution miss yields an absent
// reference, never an error, since references are allowed to dangle.
type referenceConverter struct {
	world  *scene.World
	assets scene.Assets
}

func newReferenceConverter(world *scene.World, assets scene.Assets) *referenceConverter {
	return &referenceConverter{world: world, assets: assets}
}

func (c *referenceConverter) Priority() int {
	return PriorityReference
}

func (c *referenceConverter) CanConvert(target *schema.Type) bool {
	rType := target.Type()
	if rType == nodeType {
		return true
	}
	if rType == componentType || rType.Implements(componentType) {
		return true
	}
	return rType.Implements(assetType)
}

func (c *referenceConverter) Convert(registry *Registry, value wire.Value, target *schema.Type) (interface{}, error) {
	var path string
	switch value.Kind() {
	case wire.KindString:
		path = value.Text()
	case wire.KindObject:
		marker, ok := value.Field(RefMarker)
		if !ok || marker.Kind() != wire.KindString {
			return nil, fmt.Errorf("reference map requires a %v string field, had: %v", RefMarker, value)
		}
		path = marker.Text()
	default:
		return nil, fmt.Errorf("cannot convert %v to reference %v", value, target.Type().String())
	}
	return c.resolve(path, target), nil
}

// resolve classifies the path by shape and runs the matching lookup
// strategy.
func (c *referenceConverter) resolve(path string, target *schema.Type) interface{} {
	if strings.HasPrefix(path, AssetPrefix) {
		return c.resolveAsset(path, target)
	}
	return c.resolveHierarchy(path, target)
}

func (c *referenceConverter) resolveAsset(path string, target *schema.Type) interface{} {
	if c.assets == nil {
		return absent(target)
	}
	value, err := c.assets.Load(path, target.Type())
	if err != nil || value == nil {
		return absent(target)
	}
	return value
}

func (c *referenceConverter) resolveHierarchy(path string, target *schema.Type) interface{} {
	segments := matchSegments(path)
	if len(segments) == 0 {
		return absent(target)
	}
	node := c.world.Root(segments[0])
	if node == nil {
		return absent(target)
	}
	for i := 1; i < len(segments); i++ {
		child := node.Child(segments[i])
		if child == nil {
			//the final segment may name a component on the node walked
			//so far rather than a child node
			if i == len(segments)-1 && wantsComponent(target) {
				if component := node.ComponentNamed(segments[i]); component != nil && matchesTarget(component, target) {
					return component
				}
			}
			return absent(target)
		}
		node = child
	}
	if target.Type() == nodeType {
		return node
	}
	if wantsComponent(target) {
		//a path to a node with a component target implicitly selects
		//the component attached to that node
		if component := node.Component(target.Type()); component != nil {
			return component
		}
	}
	return absent(target)
}

func (c *referenceConverter) CanSerialize(rType reflect.Type) bool {
	return rType == nodeType || rType.Implements(componentType) || rType.Implements(assetType)
}

// Serialize emits the full hierarchy path of a live object, or the
// persisted path an asset was loaded from.
func (c *referenceConverter) Serialize(registry *Registry, value interface{}) (wire.Value, error) {
	if node, ok := value.(*scene.Node); ok {
		return wire.String(node.Path()), nil
	}
	if component, ok := value.(scene.Component); ok {
		node := component.Node()
		if node == nil {
			return wire.Null, nil
		}
		return wire.String(node.Path() + "/" + scene.ComponentName(component)), nil
	}
	if c.assets != nil {
		if path, ok := c.assets.PathOf(value); ok {
			return wire.String(path), nil
		}
	}
	return wire.Null, nil
}

func wantsComponent(target *schema.Type) bool {
	rType := target.Type()
	return rType == componentType || rType.Implements(componentType)
}

func matchesTarget(component scene.Component, target *schema.Type) bool {
	rType := target.Type()
	componentType := reflect.TypeOf(component)
	if componentType == rType {
		return true
	}
	return rType.Kind() == reflect.Interface && componentType.Implements(rType)
}

func absent(target *schema.Type) interface{} {
	return reflect.Zero(target.Type()).Interface()
}
