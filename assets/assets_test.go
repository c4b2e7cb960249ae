package assets

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/automoto/caged/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArenaEmbedded(t *testing.T) {
	arena, err := LoadArena(levelFS, DefaultArenaPath)
	require.NoError(t, err)

	assert.Equal(t, 640, arena.Width)
	assert.Equal(t, 368, arena.Height)
	assert.Len(t, arena.Solids, 4)
	assert.Equal(t, Point{X: 320, Y: 328}, arena.PlayerSpawn)
	assert.Equal(t, Point{X: 320, Y: 200}, arena.RespawnAnchor)
	assert.Len(t, arena.EnemySpawns, 4)
	assert.Len(t, arena.SpikeFloors, 1)

	assert.Len(t, arena.PlatformsFor(config.LayoutSpikes), 3)
	assert.Len(t, arena.PlatformsFor(config.LayoutThin), 3)
	assert.Len(t, arena.PlatformsFor(config.LayoutWide), 2)
	assert.Empty(t, arena.PlatformsFor(config.LayoutDefault))

	assert.True(t, arena.Contains(-10, 400))
	assert.False(t, arena.Contains(-100, 0))
}

const minimalMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="40" y="64"><point/></object>
 </objectgroup>
 <objectgroup id="2" name="EnemySpawn">
  <object id="2" x="10" y="10"><point/></object>
 </objectgroup>
%s
</map>
`

func mapFS(extra string) fstest.MapFS {
	return fstest.MapFS{
		"arena.tmx": &fstest.MapFile{Data: []byte(fmt.Sprintf(minimalMap, extra))},
	}
}

func TestLoadArenaDefaults(t *testing.T) {
	arena, err := LoadArena(mapFS(""), "arena.tmx")
	require.NoError(t, err)

	// No anchor: respawn at the player spawn. No bounds: the whole map.
	assert.Equal(t, arena.PlayerSpawn, arena.RespawnAnchor)
	assert.Equal(t, Rect{W: 160, H: 80}, arena.Bounds)
}

func TestLoadArenaRejectsUnknownLayout(t *testing.T) {
	extra := `<objectgroup id="3" name="PlatformSpawn">
  <object id="3" x="0" y="0" width="10" height="4">
   <properties><property name="layout" value="lava"/></properties>
  </object>
 </objectgroup>`
	_, err := LoadArena(mapFS(extra), "arena.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lava")
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}
