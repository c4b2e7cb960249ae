package config

// Wave is one enemy-spawn encounter.
type Wave struct {
	EnemyCount    int
	SpawnInterval float64 // seconds between spawns, 0 spawns all in one tick
	Layout        ArenaLayout
	Pool          []string // enemy kind names; empty uses the table's default pool
	PreWaveDelay  float64
}

// WaveTable is the ordered list of waves for an arena session.
type WaveTable struct {
	DefaultPool []string
	Waves       []Wave
}

// PoolFor returns the enemy pool a wave spawns from.
func (t *WaveTable) PoolFor(w Wave) []string {
	if len(w.Pool) > 0 {
		return w.Pool
	}
	return t.DefaultPool
}
