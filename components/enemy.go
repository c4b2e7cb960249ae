package components

import (
	"github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
)

// RayProber answers ray queries against the level geometry for a brain.
type RayProber interface {
	Ray(ox, oy, dx, dy, maxDist float64) bool
}

// EnemySenses is what a brain may know about the world this tick.
type EnemySenses struct {
	X, Y, W, H float64 // body bounds
	VelX, VelY float64
	Grounded   bool
	Facing     int

	PlayerKnown      bool // a live player exists
	PlayerX, PlayerY float64

	Hit    bool // struck by the player since the last think
	HitDir int  // direction the hit pushes the enemy

	Probe RayProber
}

// CenterX returns the horizontal centre of the body.
func (s EnemySenses) CenterX() float64 { return s.X + s.W/2 }

// CenterY returns the vertical centre of the body.
func (s EnemySenses) CenterY() float64 { return s.Y + s.H/2 }

// EnemyIntent is a brain's answer: which velocity axes to write and whether
// touching the player hurts right now.
type EnemyIntent struct {
	VelX, VelY   float64
	SetVX, SetVY bool
	Facing       int
	Harmless     bool
}

// EnemyBrain is the behaviour capability every enemy kind provides.
type EnemyBrain interface {
	Think(s EnemySenses, dt float64) EnemyIntent
}

type EnemyData struct {
	Kind       config.EnemyKind
	TypeConfig *config.EnemyKindConfig // Cached reference to kind configuration
	Brain      EnemyBrain
	Facing     int

	Harmless    bool    // last intent said contact does not hurt
	DamageTimer float64 // until contact can hurt the player again
	HitCooldown float64 // until the player's attack can hurt this enemy again

	JustHit bool
	HitDir  int
}

var Enemy = donburi.NewComponentType[EnemyData]()
