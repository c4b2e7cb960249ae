package systems

import (
	"math"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactSlop is how far above a one-way platform a body's feet may be and
// still land on it.
const contactSlop = 0.5

// UpdatePhysics integrates every body for one fixed step.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		obj := components.Object.Get(e).Object
		integrateBody(body, obj, cfg.Physics.FixedDelta)
	})
}

func integrateBody(body *components.BodyData, obj *resolv.Object, dt float64) {
	body.BlockedX, body.BlockedY, body.Landed = false, false, false
	if body.Frozen {
		return
	}

	body.VelY += cfg.Physics.Gravity * body.GravityScale * dt
	maxFall := cfg.Physics.MaxFallSpeed
	if body.FallCap > 0 && body.FallCap < maxFall {
		maxFall = body.FallCap
	}
	if body.VelY > maxFall {
		body.VelY = maxFall
	}

	if moveX(obj, body.VelX*dt) {
		body.VelX = 0
		body.BlockedX = true
	}
	if moveY(obj, body.VelY*dt) {
		if body.VelY > 0 {
			body.Landed = true
		}
		body.VelY = 0
		body.BlockedY = true
	}
	obj.Update()
}

// moveX moves obj horizontally, stopping flush against solids. It reports
// whether the move was cut short.
func moveX(obj *resolv.Object, dx float64) bool {
	for dx != 0 {
		step := clamp(dx, -obj.W, obj.W)
		if moveXStep(obj, step) {
			return true
		}
		dx -= step
	}
	return false
}

// moveXStep makes one move no longer than the body is wide, so Check sees
// every solid the body sweeps through.
func moveXStep(obj *resolv.Object, dx float64) bool {
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		obj.X += dx
		return false
	}

	blocked := false
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if obj.Y+obj.H <= o.Y || obj.Y >= o.Y+o.H {
			continue
		}
		ahead := (dx > 0 && o.X >= obj.X+obj.W-contactSlop) ||
			(dx < 0 && o.X+o.W <= obj.X+contactSlop)
		if !ahead {
			continue
		}
		contact := check.ContactWithObject(o).X()
		if dx > 0 && math.Max(contact, 0) < dx {
			dx = math.Max(contact, 0)
			blocked = true
		}
		if dx < 0 && math.Min(contact, 0) > dx {
			dx = math.Min(contact, 0)
			blocked = true
		}
	}
	obj.X += dx
	return blocked
}

// moveY moves obj vertically. Solids block both ways; one-way platforms only
// stop a body falling onto them from above.
func moveY(obj *resolv.Object, dy float64) bool {
	for dy != 0 {
		step := clamp(dy, -obj.H, obj.H)
		if moveYStep(obj, step) {
			return true
		}
		dy -= step
	}
	return false
}

func moveYStep(obj *resolv.Object, dy float64) bool {
	check := obj.Check(0, dy, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		obj.Y += dy
		return false
	}

	blocked := false
	for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPlatform) {
		if obj.X+obj.W <= o.X || obj.X >= o.X+o.W {
			continue
		}
		platform := o.HasTags(tags.ResolvPlatform)
		below := dy > 0 && o.Y >= obj.Y+obj.H-contactSlop
		above := dy < 0 && !platform && o.Y+o.H <= obj.Y+contactSlop
		if !below && !above {
			continue
		}
		contact := check.ContactWithObject(o).Y()
		if below && math.Max(contact, 0) < dy {
			dy = math.Max(contact, 0)
			blocked = true
		}
		if above && math.Min(contact, 0) > dy {
			dy = math.Min(contact, 0)
			blocked = true
		}
	}
	obj.Y += dy
	return blocked
}

// senseGround probes a small circle under the feet. Platforms only count
// while the body is not rising and its feet are at the platform top.
func senseGround(obj *resolv.Object, velY float64) bool {
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H + cfg.Physics.GroundCheckOffset
	r := cfg.Physics.GroundCheckRadius
	if CircleOverlap(obj.Space, cx, cy, r, tags.ResolvSolid) {
		return true
	}
	if velY < 0 {
		return false
	}
	for _, o := range candidates(obj.Space, cx-r, cy-r, r*2, r*2, tags.ResolvPlatform) {
		feet := obj.Y + obj.H
		if feet <= o.Y+contactSlop && feet >= o.Y-cfg.Physics.GroundCheckOffset-r &&
			cx >= o.X-r && cx <= o.X+o.W+r {
			return true
		}
	}
	return false
}

// senseWalls casts a ray each way from the body centre. The right wall wins
// when both sides touch.
func senseWalls(obj *resolv.Object) (touching bool, dir int) {
	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
	reach := obj.W/2 + cfg.Physics.WallCheckDistance
	_, left := RayCast(obj.Space, cx, cy, -1, 0, reach, tags.ResolvSolid)
	_, right := RayCast(obj.Space, cx, cy, 1, 0, reach, tags.ResolvSolid)
	switch {
	case right:
		return true, cfg.DirectionRight
	case left:
		return true, cfg.DirectionLeft
	}
	return false, 0
}
