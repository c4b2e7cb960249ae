package assets

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/caged/config"
	"gopkg.in/yaml.v3"
)

type WaveSpec struct {
	EnemyCount    int      `yaml:"enemy_count"`
	SpawnInterval *float64 `yaml:"spawn_interval"`
	Layout        string   `yaml:"layout"`
	Pool          []string `yaml:"pool"`
	PreWaveDelay  *float64 `yaml:"pre_wave_delay"`
}

type WaveTableSpec struct {
	DefaultPool []string   `yaml:"default_pool"`
	Waves       []WaveSpec `yaml:"waves"`
}

// MustLoadWaves loads the embedded wave table and panics on error.
func MustLoadWaves() *config.WaveTable {
	table, err := LoadWavesFS(dataFS, DefaultWavesPath)
	if err != nil {
		panic(err)
	}
	return table
}

// LoadWavesFS reads and parses a wave table from fsys.
func LoadWavesFS(fsys fs.FS, path string) (*config.WaveTable, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	table, err := ParseWaves(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return table, nil
}

// LoadWavesFile reads a wave table from disk.
func LoadWavesFile(path string) (*config.WaveTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	table, err := ParseWaves(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return table, nil
}

// ParseWaves decodes and validates a YAML wave table. Enemy names must exist
// in config.Enemy.Kinds.
func ParseWaves(data []byte) (*config.WaveTable, error) {
	var spec WaveTableSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal waves: %w", err)
	}
	if len(spec.Waves) == 0 {
		return nil, fmt.Errorf("wave table has no waves")
	}
	if len(spec.DefaultPool) == 0 {
		return nil, fmt.Errorf("wave table has no default_pool")
	}
	if err := checkPool(spec.DefaultPool); err != nil {
		return nil, fmt.Errorf("default_pool: %w", err)
	}

	table := &config.WaveTable{DefaultPool: spec.DefaultPool}
	for i, ws := range spec.Waves {
		if ws.EnemyCount < 0 {
			return nil, fmt.Errorf("wave %d: negative enemy_count", i+1)
		}
		layout, err := config.ParseArenaLayout(ws.Layout)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i+1, err)
		}
		if err := checkPool(ws.Pool); err != nil {
			return nil, fmt.Errorf("wave %d: pool: %w", i+1, err)
		}

		wave := config.Wave{
			EnemyCount:    ws.EnemyCount,
			SpawnInterval: config.Arena.DefaultSpawnInterval,
			Layout:        layout,
			Pool:          ws.Pool,
			PreWaveDelay:  config.Arena.DefaultPreWaveDelay,
		}
		if ws.SpawnInterval != nil {
			if *ws.SpawnInterval < 0 {
				return nil, fmt.Errorf("wave %d: negative spawn_interval", i+1)
			}
			wave.SpawnInterval = *ws.SpawnInterval
		}
		if ws.PreWaveDelay != nil {
			if *ws.PreWaveDelay < 0 {
				return nil, fmt.Errorf("wave %d: negative pre_wave_delay", i+1)
			}
			wave.PreWaveDelay = *ws.PreWaveDelay
		}
		table.Waves = append(table.Waves, wave)
	}
	return table, nil
}

func checkPool(pool []string) error {
	for _, name := range pool {
		if _, ok := config.Enemy.Kinds[name]; !ok {
			return fmt.Errorf("unknown enemy %q", name)
		}
	}
	return nil
}
