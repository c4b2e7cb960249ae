package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/caged/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:data
	dataFS embed.FS
)

// DefaultArenaPath is the embedded arena map.
const DefaultArenaPath = "levels/arena.tmx"

// DefaultWavesPath is the embedded wave table.
const DefaultWavesPath = "data/waves.yaml"

type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// PlatformSpawn is a platform that only exists while its layout is active.
type PlatformSpawn struct {
	Rect
	Layout config.ArenaLayout
}

// Arena is the static description of an arena map.
type Arena struct {
	Name          string
	Width, Height int

	Solids        []Rect
	PlayerSpawn   Point
	RespawnAnchor Point
	EnemySpawns   []Point
	Platforms     []PlatformSpawn
	SpikeFloors   []Rect
	Bounds        Rect
}

// PlatformsFor returns the platform spawns of a layout.
func (a *Arena) PlatformsFor(layout config.ArenaLayout) []Rect {
	var out []Rect
	for _, p := range a.Platforms {
		if p.Layout == layout {
			out = append(out, p.Rect)
		}
	}
	return out
}

// Contains reports whether a point lies inside the arena bounds.
func (a *Arena) Contains(x, y float64) bool {
	b := a.Bounds
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// MustLoadArena loads the embedded arena and panics on error.
func MustLoadArena() *Arena {
	arena, err := LoadArena(levelFS, DefaultArenaPath)
	if err != nil {
		panic(err)
	}
	return arena
}

// LoadArena parses a Tiled map from fsys into an Arena.
func LoadArena(fsys fs.FS, path string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}

	arena := &Arena{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	arena.Bounds = Rect{W: float64(arena.Width), H: float64(arena.Height)}

	var hasSpawn, hasAnchor bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solid":
			for _, o := range og.Objects {
				arena.Solids = append(arena.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				arena.PlayerSpawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
				hasSpawn = true
			}
		case "RespawnAnchor":
			if len(og.Objects) > 0 {
				arena.RespawnAnchor = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
				hasAnchor = true
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				arena.EnemySpawns = append(arena.EnemySpawns, Point{X: o.X, Y: o.Y})
			}
		case "PlatformSpawn":
			for _, o := range og.Objects {
				layout, err := config.ParseArenaLayout(o.Properties.GetString("layout"))
				if err != nil {
					return nil, fmt.Errorf("assets: %s: platform %d: %w", path, o.ID, err)
				}
				arena.Platforms = append(arena.Platforms, PlatformSpawn{
					Rect:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Layout: layout,
				})
			}
		case "SpikeFloor":
			for _, o := range og.Objects {
				arena.SpikeFloors = append(arena.SpikeFloors, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "ArenaBounds":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.Bounds = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			}
		}
	}

	if !hasSpawn {
		return nil, fmt.Errorf("assets: %s: no PlayerSpawn object", path)
	}
	if len(arena.EnemySpawns) == 0 {
		return nil, fmt.Errorf("assets: %s: no EnemySpawn objects", path)
	}
	if !hasAnchor {
		arena.RespawnAnchor = arena.PlayerSpawn
	}

	return arena, nil
}
