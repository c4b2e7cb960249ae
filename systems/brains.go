package systems

import (
	"math"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
)

// NewBrain returns a fresh behaviour for an enemy kind.
func NewBrain(kind cfg.EnemyKindConfig) components.EnemyBrain {
	gravity := cfg.Physics.Gravity * kind.GravityScale
	switch kind.Kind {
	case cfg.EnemyLeaper:
		return &leaperBrain{p: cfg.Enemy.Leaper, gravity: gravity}
	case cfg.EnemyFlyer:
		return &flyerBrain{p: cfg.Enemy.Flyer}
	case cfg.EnemySlammer:
		return &slammerBrain{p: cfg.Enemy.Slammer, gravity: gravity}
	}
	return &crawlerBrain{p: cfg.Enemy.Crawler}
}

func facingOr(dir, fallback int) int {
	if dir != 0 {
		return dir
	}
	if fallback != 0 {
		return fallback
	}
	return cfg.DirectionLeft
}

func probe(s components.EnemySenses, ox, oy, dx, dy, dist float64) bool {
	return s.Probe != nil && s.Probe.Ray(ox, oy, dx, dy, dist)
}

// Crawler

type crawlerBrain struct {
	p         cfg.CrawlerParams
	dir       int
	flipTimer float64
	stagger   float64
}

func (b *crawlerBrain) Think(s components.EnemySenses, dt float64) components.EnemyIntent {
	b.dir = facingOr(b.dir, s.Facing)
	if b.flipTimer > 0 {
		b.flipTimer -= dt
	}

	if s.Hit {
		b.stagger = b.p.StaggerTime
	}
	if b.stagger > 0 {
		b.stagger -= dt
		return components.EnemyIntent{Facing: b.dir}
	}

	if s.PlayerKnown {
		dx := s.PlayerX - s.CenterX()
		sameLevel := math.Abs(s.PlayerY-s.CenterY()) <= s.H*2
		if want := int(sign(dx)); want != 0 && want != b.dir && sameLevel &&
			math.Abs(dx) <= b.p.VisionRange && b.flipTimer <= 0 {
			b.dir = want
			b.flipTimer = b.p.FlipCooldown
		}
	}

	if s.Grounded && b.flipTimer <= 0 && b.blocked(s) {
		b.dir = -b.dir
		b.flipTimer = b.p.FlipCooldown
	}

	return components.EnemyIntent{
		VelX:   float64(b.dir) * b.p.MoveSpeed,
		SetVX:  true,
		Facing: b.dir,
	}
}

// blocked reports a wall directly ahead or no floor under the leading foot.
func (b *crawlerBrain) blocked(s components.EnemySenses) bool {
	dir := float64(b.dir)
	if probe(s, s.CenterX(), s.CenterY(), dir, 0, s.W/2+b.p.LedgeProbe) {
		return true
	}
	if s.Probe == nil {
		return false
	}
	footX := s.CenterX() + dir*(s.W/2+1)
	return !probe(s, footX, s.Y+s.H-1, 0, 1, b.p.LedgeProbe+1)
}

// Leaper

type leaperBrain struct {
	p        cfg.LeaperParams
	gravity  float64
	cooldown float64
	roamDir  int
	stagger  float64
}

// leapVelocity is the launch velocity of a ballistic arc that covers (dx, dy)
// under gravity g. Flight time grows with horizontal distance.
func leapVelocity(dx, dy, g float64, p cfg.LeaperParams) (vx, vy float64) {
	t := clamp(math.Abs(dx)/p.JumpTimeScale, p.MinJumpTime, p.MaxJumpTime)
	return dx / t, (dy - 0.5*g*t*t) / t
}

func (b *leaperBrain) Think(s components.EnemySenses, dt float64) components.EnemyIntent {
	if b.cooldown > 0 {
		b.cooldown -= dt
	}
	if s.Hit {
		b.stagger = b.p.StaggerTime
	}
	if b.stagger > 0 {
		b.stagger -= dt
		return components.EnemyIntent{Facing: s.Facing}
	}

	// In flight the arc is left alone.
	if !s.Grounded {
		return components.EnemyIntent{Facing: s.Facing}
	}

	rest := components.EnemyIntent{SetVX: true, Facing: s.Facing}
	if b.cooldown > 0 {
		return rest
	}

	dx := s.PlayerX - s.CenterX()
	dy := s.PlayerY - s.CenterY()
	if s.PlayerKnown && math.Hypot(dx, dy) <= b.p.VisionRange {
		dir := facingOr(int(sign(dx)), s.Facing)
		if b.wallAhead(s, dir) {
			b.cooldown = b.p.WallAdjustTime
			return b.hop(-dir)
		}
		vx, vy := leapVelocity(dx, dy, b.gravity, b.p)
		b.cooldown = b.p.LeapCooldown
		return components.EnemyIntent{VelX: vx, VelY: vy, SetVX: true, SetVY: true, Facing: dir}
	}

	b.roamDir = facingOr(b.roamDir, s.Facing)
	if b.wallAhead(s, b.roamDir) {
		b.roamDir = -b.roamDir
	}
	intent := b.hop(b.roamDir)
	b.roamDir = -b.roamDir
	b.cooldown = b.p.RoamCooldown
	return intent
}

func (b *leaperBrain) hop(dir int) components.EnemyIntent {
	return components.EnemyIntent{
		VelX:   float64(dir) * b.p.RoamHopX,
		VelY:   -b.p.RoamHopY,
		SetVX:  true,
		SetVY:  true,
		Facing: dir,
	}
}

func (b *leaperBrain) wallAhead(s components.EnemySenses, dir int) bool {
	return probe(s, s.CenterX(), s.CenterY(), float64(dir), 0, s.W/2+b.p.WallCheck)
}

// Flyer

type flyerPhase int

const (
	flyerFollow flyerPhase = iota
	flyerDash
	flyerStunned
)

type flyerBrain struct {
	p     cfg.FlyerParams
	phase flyerPhase
	timer float64

	dashCooldown float64
	dashX, dashY float64 // unit direction of the running dash

	bobTime float64
	avoidVY float64
}

func (b *flyerBrain) Think(s components.EnemySenses, dt float64) components.EnemyIntent {
	b.bobTime += dt
	if b.dashCooldown > 0 {
		b.dashCooldown -= dt
	}

	if s.Hit {
		b.phase = flyerStunned
		b.timer = b.p.KnockbackDuration
	}

	switch b.phase {
	case flyerStunned:
		b.timer -= dt
		if b.timer > timeEpsilon {
			return components.EnemyIntent{Facing: s.Facing}
		}
		b.phase = flyerFollow
	case flyerDash:
		b.timer -= dt
		if b.timer > timeEpsilon && !b.wallAhead(s, b.dashX, b.dashY, b.p.DashWallProbe) {
			return components.EnemyIntent{
				VelX:   b.dashX * b.p.DashSpeed,
				VelY:   b.dashY * b.p.DashSpeed,
				SetVX:  true,
				SetVY:  true,
				Facing: facingOr(int(sign(b.dashX)), s.Facing),
			}
		}
		b.phase = flyerFollow
	}

	var vx, vy float64
	facing := s.Facing
	if s.PlayerKnown {
		dx := s.PlayerX - s.CenterX()
		dy := s.PlayerY - s.CenterY()
		dist := math.Hypot(dx, dy)
		facing = facingOr(int(sign(dx)), s.Facing)

		if dist > 0 && dist <= b.p.DashTriggerDistance && b.dashCooldown <= 0 &&
			!b.wallAhead(s, dx/dist, dy/dist, b.p.DashWallProbe) {
			b.phase = flyerDash
			b.timer = b.p.DashDuration
			b.dashCooldown = b.p.DashCooldown
			b.dashX, b.dashY = dx/dist, dy/dist
			return components.EnemyIntent{
				VelX:   b.dashX * b.p.DashSpeed,
				VelY:   b.dashY * b.p.DashSpeed,
				SetVX:  true,
				SetVY:  true,
				Facing: facing,
			}
		}
		if dist > b.p.StoppingDistance {
			vx = dx / dist * b.p.FollowSpeed
			vy = dy / dist * b.p.FollowSpeed
		}
	}

	omega := 2 * math.Pi * b.p.BobFrequency
	vy += b.p.BobAmplitude * omega * math.Cos(omega*b.bobTime)

	avoid := 0.0
	if probe(s, s.CenterX(), s.Y+s.H, 0, 1, b.p.GroundAvoidDistance) {
		avoid = -b.p.AvoidUpSpeed
	}
	if vx != 0 && b.wallAhead(s, sign(vx), 0, b.p.ObstacleDistance) {
		avoid = -b.p.AvoidUpSpeed
		vx *= 0.25
	}
	b.avoidVY += (avoid - b.avoidVY) * math.Min(b.p.AvoidLerp*dt, 1)
	vy += b.avoidVY

	vx, vy = b.unstick(s, vx, vy)

	return components.EnemyIntent{VelX: vx, VelY: vy, SetVX: true, SetVY: true, Facing: facing}
}

// unstick turns a blocked move along the obstacle, preferring up.
func (b *flyerBrain) unstick(s components.EnemySenses, vx, vy float64) (float64, float64) {
	want := math.Hypot(vx, vy)
	if want <= b.p.StuckSpeed || math.Hypot(s.VelX, s.VelY) > b.p.StuckSpeed {
		return vx, vy
	}
	ux, uy := vx/want, vy/want
	if !b.wallAhead(s, ux, uy, b.p.StuckProbe) {
		return vx, vy
	}
	// Two perpendiculars; take the one pointing higher.
	px, py := -uy, ux
	if -ux < py {
		px, py = uy, -ux
	}
	return px * b.p.UnstickSpeed, py * b.p.UnstickSpeed
}

func (b *flyerBrain) wallAhead(s components.EnemySenses, ux, uy, reach float64) bool {
	half := math.Max(s.W, s.H) / 2
	return probe(s, s.CenterX(), s.CenterY(), ux, uy, half+reach)
}

// Slammer

type slammerPhase int

const (
	slammerIdle slammerPhase = iota
	slammerRising
	slammerSlamming
)

type slammerBrain struct {
	p        cfg.SlammerParams
	gravity  float64
	phase    slammerPhase
	timer    float64
	cooldown float64
}

func (b *slammerBrain) Think(s components.EnemySenses, dt float64) components.EnemyIntent {
	dx := s.PlayerX - s.CenterX()
	facing := s.Facing
	if s.PlayerKnown {
		facing = facingOr(int(sign(dx)), s.Facing)
	}

	switch b.phase {
	case slammerRising:
		b.timer -= dt
		if b.timer > timeEpsilon && s.VelY < 0 {
			vx := 0.0
			if s.PlayerKnown && math.Abs(dx) > 1 {
				vx = sign(dx) * math.Min(b.p.TrackSpeed, math.Abs(dx)/dt)
			}
			return components.EnemyIntent{VelX: vx, SetVX: true, Facing: facing, Harmless: true}
		}
		b.phase = slammerSlamming
		return components.EnemyIntent{VelY: b.p.SlamSpeed, SetVX: true, SetVY: true, Facing: facing}

	case slammerSlamming:
		if !s.Grounded {
			return components.EnemyIntent{VelY: b.p.SlamSpeed, SetVX: true, SetVY: true, Facing: facing}
		}
		b.phase = slammerIdle
		b.cooldown = b.p.LeapCooldown
	}

	if b.cooldown > 0 {
		b.cooldown -= dt
	}
	idle := components.EnemyIntent{SetVX: true, Facing: facing, Harmless: true}
	if !s.Grounded || b.cooldown > 0 || !s.PlayerKnown || math.Abs(dx) > b.p.DetectionRange {
		return idle
	}

	half := b.p.ArcTime / 2
	b.phase = slammerRising
	b.timer = half
	idle.VelY = -b.gravity * half
	idle.SetVY = true
	return idle
}
