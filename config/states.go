package config

import (
	"fmt"
	"strings"
)

// MotionMode is the dominant movement mode of the player for a tick.
type MotionMode int

const (
	Grounded MotionMode = iota
	Airborne
	WallSliding
	Dashing
	WallJumping
)

var motionModeNames = map[MotionMode]string{
	Grounded:    "grounded",
	Airborne:    "airborne",
	WallSliding: "wall_sliding",
	Dashing:     "dashing",
	WallJumping: "wall_jumping",
}

func (m MotionMode) String() string {
	if name, ok := motionModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("motion(%d)", int(m))
}

// SessionState is the arena director's high level state.
type SessionState int

const (
	SessionTutorial SessionState = iota
	SessionCountdown
	SessionSpawning
	SessionAwaitingClear
	SessionRest
	SessionVictory
	SessionDefeat
)

var sessionStateNames = map[SessionState]string{
	SessionTutorial:      "tutorial",
	SessionCountdown:     "countdown",
	SessionSpawning:      "spawning",
	SessionAwaitingClear: "awaiting_clear",
	SessionRest:          "rest",
	SessionVictory:       "victory",
	SessionDefeat:        "defeat",
}

func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("session(%d)", int(s))
}

// Terminal reports whether the session can no longer advance.
func (s SessionState) Terminal() bool {
	return s == SessionVictory || s == SessionDefeat
}

// ArenaLayout names a hazard/platform configuration applied for a wave.
type ArenaLayout int

const (
	LayoutDefault ArenaLayout = iota
	LayoutSpikes
	LayoutThin
	LayoutWide
)

var arenaLayoutNames = map[ArenaLayout]string{
	LayoutDefault: "default",
	LayoutSpikes:  "spikes",
	LayoutThin:    "thin",
	LayoutWide:    "wide",
}

func (l ArenaLayout) String() string {
	if name, ok := arenaLayoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// Hazardous layouts get the longer setup countdown.
func (l ArenaLayout) Hazardous() bool {
	return l == LayoutSpikes
}

// ParseArenaLayout accepts the names used in map properties and wave files.
// An empty name is the default layout.
func ParseArenaLayout(name string) (ArenaLayout, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return LayoutDefault, nil
	}
	for layout, n := range arenaLayoutNames {
		if n == name {
			return layout, nil
		}
	}
	return LayoutDefault, fmt.Errorf("unknown arena layout %q", name)
}

// AttackZone is one of the three fixed melee hitboxes.
type AttackZone int

const (
	ZoneNeutral AttackZone = iota
	ZoneUp
	ZoneDown
)

func (z AttackZone) String() string {
	switch z {
	case ZoneUp:
		return "up"
	case ZoneDown:
		return "down"
	default:
		return "neutral"
	}
}

// AttackPhase tracks the melee attack cycle.
type AttackPhase int

const (
	AttackIdle AttackPhase = iota
	AttackActive
	AttackCooldown
)

// EnemyKind selects an enemy behaviour variant.
type EnemyKind int

const (
	EnemyCrawler EnemyKind = iota
	EnemyLeaper
	EnemyFlyer
	EnemySlammer
)
