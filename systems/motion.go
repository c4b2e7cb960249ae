package systems

import (
	"math"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/solarlune/resolv"
)

// motion bundles the player's movement components for one step.
type motion struct {
	player *components.PlayerData
	body   *components.BodyData
	ground *components.GroundData
	jump   *components.JumpData
	wall   *components.WallData
	dash   *components.DashData
}

// frameStep is the per-frame half of the controller: facing, jump timers,
// short hop and the dash request latch.
func (m motion) frameStep(in components.InputSnapshot, dt float64) {
	if in.MoveX != 0 && !m.dash.Active {
		m.player.Facing = int(sign(in.MoveX))
	}

	if m.ground.Grounded {
		m.jump.CoyoteTimer = cfg.Player.CoyoteTime
	} else if m.jump.CoyoteTimer > 0 {
		m.jump.CoyoteTimer = math.Max(m.jump.CoyoteTimer-dt, 0)
	}

	if in.Jump.JustPressed {
		m.jump.BufferTimer = cfg.Player.JumpBufferTime
	}
	if m.jump.BufferTimer > 0 {
		m.jump.BufferTimer = math.Max(m.jump.BufferTimer-dt, 0)
	}

	// Variable jump height: releasing while still rising cuts the rise.
	if in.Jump.JustReleased && m.body.VelY < 0 && !m.dash.Active {
		m.body.VelY *= cfg.Player.ShortHopFactor
	}

	if in.Dash.JustPressed && !m.dash.Active {
		m.dash.Requested = true
	}
}

// physicsStep is the fixed-step half. Order matters: sensing, dash reset,
// dash (which short-circuits), horizontal blend, wall slide, jump, gravity.
func (m motion) physicsStep(obj *resolv.Object, in components.InputSnapshot, dt float64) {
	m.ground.Grounded = senseGround(obj, m.body.VelY)
	m.wall.Touching, m.wall.Direction = senseWalls(obj)
	m.jump.Pressed = false

	m.refreshDash(dt)

	if m.wall.Jumping {
		m.wall.JumpingTimer -= dt
		if m.wall.JumpingTimer <= timeEpsilon {
			m.wall.Jumping = false
			m.wall.JumpingTimer = 0
		}
	}

	if m.stepDash(in, dt) {
		m.player.Mode = m.mode()
		return
	}

	if !m.wall.Jumping {
		target := in.MoveX * cfg.Player.MoveSpeed
		m.body.VelX += (target - m.body.VelX) * cfg.Player.Acceleration * dt
	}

	m.updateWallSlide(in)
	m.consumeJump(in)
	m.selectGravity()

	m.player.Mode = m.mode()
}

// refreshDash restores air dash on ground or wall contact and runs the
// grounded cooldown, which only counts down while grounded.
func (m motion) refreshDash(dt float64) {
	if m.ground.Grounded || m.wall.Touching {
		m.dash.HasAirDashed = false
	}
	if m.ground.Grounded && !m.dash.CanDashGrounded {
		m.dash.CooldownTimer -= dt
		if m.dash.CooldownTimer <= timeEpsilon {
			m.dash.CooldownTimer = 0
			m.dash.CanDashGrounded = true
		}
	}
}

// stepDash runs an active dash or starts a requested one. It reports true
// when the rest of the step must be skipped.
func (m motion) stepDash(in components.InputSnapshot, dt float64) bool {
	if m.dash.Active {
		m.dash.Timer -= dt
		if m.dash.Timer > timeEpsilon {
			return true
		}
		m.dash.Active = false
		m.dash.Timer = 0
		m.body.GravityScale = cfg.Player.GravityScale
	}

	if !m.dash.Requested {
		return false
	}
	m.dash.Requested = false

	grounded := m.ground.Grounded
	if grounded && !m.dash.CanDashGrounded {
		return false
	}
	if !grounded && m.dash.HasAirDashed {
		return false
	}

	dir := int(sign(in.MoveX))
	if dir == 0 {
		dir = m.player.Facing
	}
	if dir == 0 {
		dir = cfg.DirectionRight
	}
	m.player.Facing = dir

	m.dash.Active = true
	m.dash.Timer = cfg.Player.DashDuration
	if grounded {
		m.dash.CanDashGrounded = false
		m.dash.CooldownTimer = cfg.Player.DashCooldown
	} else {
		m.dash.HasAirDashed = true
	}

	m.wall.Jumping = false
	m.wall.JumpingTimer = 0
	m.wall.Sliding = false

	m.body.GravityScale = 0
	m.body.FallCap = 0
	m.body.VelX = float64(dir) * cfg.Player.DashForce
	m.body.VelY = 0
	return true
}

// updateWallSlide starts a slide when falling while pushing into a wall.
// Once started it holds without input until landing or losing wall contact.
// A wall jump also ends it.
func (m motion) updateWallSlide(in components.InputSnapshot) {
	if m.wall.Touching &&
		!m.ground.Grounded &&
		m.body.VelY > 0 &&
		m.wall.Direction != 0 &&
		int(sign(in.MoveX)) == m.wall.Direction &&
		!m.wall.Jumping {
		m.wall.Sliding = true
	}
	if m.ground.Grounded || !m.wall.Touching || m.wall.Jumping {
		m.wall.Sliding = false
	}

	if m.wall.Sliding {
		m.body.VelY = math.Min(m.body.VelY, cfg.Player.WallSlideSpeed)
		m.body.FallCap = cfg.Player.WallSlideSpeed
	} else {
		m.body.FallCap = 0
	}
}

// consumeJump takes a buffered jump if a ground jump or a wall jump from a
// slide is possible and executes it. Touching a wall while rising is not
// enough.
func (m motion) consumeJump(in components.InputSnapshot) {
	if m.jump.BufferTimer <= 0 {
		return
	}

	canGroundJump := m.ground.Grounded || m.jump.CoyoteTimer > 0
	if !canGroundJump && !m.wall.Sliding {
		return
	}

	m.jump.BufferTimer = 0
	m.jump.CoyoteTimer = 0
	m.jump.Pressed = true

	if canGroundJump && !m.wall.Sliding {
		m.body.VelY = -cfg.Player.JumpForce
		m.ground.Grounded = false
		return
	}
	m.wallJump(in)
}

func (m motion) wallJump(in components.InputSnapshot) {
	vx, vy := wallJumpVelocity(m.wall.Direction, in.MoveX)
	m.body.VelX = vx
	m.body.VelY = vy
	m.body.FallCap = 0

	m.wall.Sliding = false
	m.wall.Jumping = true
	m.wall.JumpingTimer = cfg.Player.WallJumpTime
	m.player.Facing = -m.wall.Direction
}

// wallJumpVelocity returns the exit velocity for a wall on side wallDir.
// Holding into the wall damps the horizontal push.
func wallJumpVelocity(wallDir int, moveX float64) (vx, vy float64) {
	out := float64(-wallDir)
	scale := 1.0
	if wallDir != 0 && int(sign(moveX)) == wallDir {
		scale = cfg.Player.WallJumpIntoWallScale
	}
	return out * cfg.Player.WallJumpForceX * scale, -cfg.Player.WallJumpForceY
}

func (m motion) selectGravity() {
	if m.body.VelY > 0 && !m.wall.Sliding {
		m.body.GravityScale = cfg.Player.GravityScale * cfg.Player.FallMultiplier
	} else {
		m.body.GravityScale = cfg.Player.GravityScale
	}
}

func (m motion) mode() cfg.MotionMode {
	switch {
	case m.dash.Active:
		return cfg.Dashing
	case m.wall.Jumping:
		return cfg.WallJumping
	case m.wall.Sliding:
		return cfg.WallSliding
	case m.ground.Grounded:
		return cfg.Grounded
	}
	return cfg.Airborne
}
