package scene

import (
	"fmt"
	"strings"
)

// Built-in fixed-shape value types mirrored on the wire as field maps.
type (
	//Vector2 represents a 2d vector
	Vector2 struct {
		X float32
		Y float32
	}

	//Vector3 represents a 3d vector
	Vector3 struct {
		X float32
		Y float32
		Z float32
	}

	//Vector4 represents a 4d vector
	Vector4 struct {
		X float32
		Y float32
		Z float32
		W float32
	}

	//Quaternion represents a rotation
	Quaternion struct {
		X float32
		Y float32
		Z float32
		W float32
	}

	//Color represents an rgba color with components in the 0..1 range
	Color struct {
		R float32
		G float32
		B float32
		A float32
	}

	//Rect represents an axis aligned rectangle
	Rect struct {
		X      float32
		Y      float32
		Width  float32
		Height float32
	}

	//LayerMask represents a 32-bit layer bitmask
	LayerMask int32

	//LayerTable maps layer names to bit positions
	LayerTable struct {
		names  [32]string
		byFold map[string]int
	}
)

// NewLayerTable creates a layer table from bit → name assignments.
func NewLayerTable(names map[int]string) *LayerTable {
	ret := &LayerTable{byFold: make(map[string]int, len(names))}
	for bit, name := range names {
		if bit < 0 || bit > 31 || name == "" {
			continue
		}
		ret.names[bit] = name
		ret.byFold[strings.ToLower(name)] = bit
	}
	return ret
}

// DefaultLayers returns the built-in layer assignments.
func DefaultLayers() *LayerTable {
	return NewLayerTable(map[int]string{
		0: "Default",
		1: "TransparentFX",
		2: "IgnoreRaycast",
		4: "Water",
		5: "UI",
	})
}

// Name returns the name assigned to a bit.
func (t *LayerTable) Name(bit int) (string, bool) {
	if bit < 0 || bit > 31 || t.names[bit] == "" {
		return "", false
	}
	return t.names[bit], true
}

// Bit returns the bit assigned to a name, matched case-insensitively.
func (t *LayerTable) Bit(name string) (int, bool) {
	bit, ok := t.byFold[strings.ToLower(name)]
	return bit, ok
}

// Names decodes a mask into the list of named bits, lowest bit first.
func (t *LayerTable) Names(mask LayerMask) []string {
	var ret []string
	for bit := 0; bit < 32; bit++ {
		if mask&(1<<bit) == 0 {
			continue
		}
		if name, ok := t.Name(bit); ok {
			ret = append(ret, name)
		}
	}
	return ret
}

// Mask resolves a list of layer names into a combined mask; an unknown
// name is a caller error.
func (t *LayerTable) Mask(names []string) (LayerMask, error) {
	var ret LayerMask
	for _, name := range names {
		bit, ok := t.Bit(name)
		if !ok {
			return 0, fmt.Errorf("unknown layer: %q", name)
		}
		ret |= 1 << bit
	}
	return ret, nil
}
