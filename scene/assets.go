package scene

import (
	"os"
	"path/filepath"
	"reflect"

	"github.com/goccy/go-json"
)

type (
	// Asset marks persisted data types addressable by asset path; embed
	// AssetBase in concrete asset types.
	Asset interface {
		assetRef()
	}

	//AssetBase marks a struct as a persisted asset
	AssetBase struct{}

	// Assets loads persisted assets by exact path and reports the path an
	// already loaded value originated from.
	Assets interface {
		//Load returns the asset at path cast to target, or nil on a miss
		//or type mismatch
		Load(path string, target reflect.Type) (interface{}, error)
		//PathOf returns the origin path of a previously resolved value
		PathOf(value interface{}) (string, bool)
	}

	//MemoryAssets is an in-memory asset store
	MemoryAssets struct {
		values map[string]interface{}
		paths  map[interface{}]string
	}

	//DirAssets loads JSON-encoded assets from a directory tree
	DirAssets struct {
		root  string
		paths map[interface{}]string
	}
)

func (AssetBase) assetRef() {}

// NewMemoryAssets creates an empty in-memory store.
func NewMemoryAssets() *MemoryAssets {
	return &MemoryAssets{
		values: make(map[string]interface{}),
		paths:  make(map[interface{}]string),
	}
}

// Put stores a value under the supplied asset path.
func (m *MemoryAssets) Put(path string, value interface{}) {
	m.values[path] = value
	if reflect.TypeOf(value).Comparable() {
		m.paths[value] = path
	}
}

// Load implements Assets.
func (m *MemoryAssets) Load(path string, target reflect.Type) (interface{}, error) {
	value, ok := m.values[path]
	if !ok {
		return nil, nil
	}
	if target != nil && !reflect.TypeOf(value).AssignableTo(target) {
		return nil, nil
	}
	return value, nil
}

// PathOf implements Assets.
func (m *MemoryAssets) PathOf(value interface{}) (string, bool) {
	path, ok := m.paths[value]
	return path, ok
}

// NewDirAssets creates a directory-backed store rooted at the supplied
// directory; asset paths are resolved relative to it.
func NewDirAssets(root string) *DirAssets {
	return &DirAssets{root: root, paths: make(map[interface{}]string)}
}

// Load implements Assets: the file at the asset path is decoded into a new
// instance of the target type. A missing file or undecodable content is a
// miss, not an error.
func (d *DirAssets) Load(path string, target reflect.Type) (interface{}, error) {
	data, err := os.ReadFile(filepath.Join(d.root, filepath.FromSlash(path)))
	if err != nil {
		return nil, nil
	}
	structType := target
	for structType != nil && structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType == nil || structType.Kind() != reflect.Struct {
		return nil, nil
	}
	holder := reflect.New(structType)
	if err = json.Unmarshal(data, holder.Interface()); err != nil {
		return nil, nil
	}
	var value interface{}
	if target.Kind() == reflect.Ptr {
		value = holder.Interface()
	} else {
		value = holder.Elem().Interface()
	}
	if reflect.TypeOf(value).Comparable() {
		d.paths[value] = path
	}
	return value, nil
}

// PathOf implements Assets.
func (d *DirAssets) PathOf(value interface{}) (string, bool) {
	path, ok := d.paths[value]
	return path, ok
}
