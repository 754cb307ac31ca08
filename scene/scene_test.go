package scene

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type light struct {
	ComponentBase
	Intensity float32
}

type camera struct {
	ComponentBase
	Fov float32
}

func TestNode_Hierarchy(t *testing.T) {
	root := NewNode("Parent")
	child := root.Add(NewNode("Child"))
	child.SetActive(false)
	grand := child.Add(NewNode("Grand"))

	assert.Equal(t, child, root.Child("Child"))
	assert.Nil(t, root.Child("Missing"))
	assert.Equal(t, "Parent/Child/Grand", grand.Path())
	assert.Equal(t, "Parent", root.Path())
	assert.False(t, child.Active())
	assert.Equal(t, child, root.Child("Child")) //inactive nodes stay visible
}

func TestNode_Components(t *testing.T) {
	node := NewNode("Rig")
	attached := node.Attach(&light{Intensity: 2})
	node.Attach(&camera{Fov: 60})

	assert.Equal(t, node, attached.Node())
	assert.Equal(t, attached, node.Component(reflect.TypeOf(&light{})))
	assert.Equal(t, attached, node.ComponentNamed("light"))
	assert.Nil(t, node.ComponentNamed("collider"))
	assert.Equal(t, attached, node.Component(reflect.TypeOf((*Component)(nil)).Elem()))
}

func TestWorld_Root(t *testing.T) {
	inactive := NewNode("Hidden")
	inactive.SetActive(false)
	world := NewWorld(NewNode("Main"), inactive)
	assert.NotNil(t, world.Root("Hidden"))
	assert.Nil(t, world.Root("Other"))
}

func TestLayerTable(t *testing.T) {
	table := DefaultLayers()
	mask, err := table.Mask([]string{"default", "UI"})
	assert.Nil(t, err)
	assert.EqualValues(t, 33, mask)
	assert.Equal(t, []string{"Default", "UI"}, table.Names(mask))

	_, err = table.Mask([]string{"Nope"})
	assert.NotNil(t, err)
}

func TestMemoryAssets(t *testing.T) {
	type material struct {
		AssetBase
		Shade string
	}
	store := NewMemoryAssets()
	asset := &material{Shade: "matte"}
	store.Put("Assets/Materials/Matte.mat", asset)

	loaded, err := store.Load("Assets/Materials/Matte.mat", reflect.TypeOf(&material{}))
	assert.Nil(t, err)
	assert.Equal(t, asset, loaded)

	loaded, err = store.Load("Assets/Materials/Gloss.mat", reflect.TypeOf(&material{}))
	assert.Nil(t, err)
	assert.Nil(t, loaded)

	loaded, err = store.Load("Assets/Materials/Matte.mat", reflect.TypeOf(&light{}))
	assert.Nil(t, err)
	assert.Nil(t, loaded)

	path, ok := store.PathOf(asset)
	assert.True(t, ok)
	assert.Equal(t, "Assets/Materials/Matte.mat", path)
}

func TestDirAssets(t *testing.T) {
	type material struct {
		AssetBase
		Shade string
	}
	dir := t.TempDir()
	require.Nil(t, os.MkdirAll(filepath.Join(dir, "Assets"), 0o755))
	require.Nil(t, os.WriteFile(filepath.Join(dir, "Assets", "Matte.json"), []byte(`{"Shade":"matte"}`), 0o644))

	store := NewDirAssets(dir)
	loaded, err := store.Load("Assets/Matte.json", reflect.TypeOf(&material{}))
	assert.Nil(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "matte", loaded.(*material).Shade)

	path, ok := store.PathOf(loaded)
	assert.True(t, ok)
	assert.Equal(t, "Assets/Matte.json", path)

	loaded, err = store.Load("Assets/Missing.json", reflect.TypeOf(&material{}))
	assert.Nil(t, err)
	assert.Nil(t, loaded)
}
