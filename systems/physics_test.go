package systems

import (
	"testing"

	"github.com/automoto/caged/components"
	"github.com/automoto/caged/systems/factory"
	"github.com/automoto/caged/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveXStopsFlushAgainstWall(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, 320, 200, 320, 200)
	obj := components.Object.Get(p).Object
	placeFeet(obj, rightWallX-40, 200)

	// Longer than the body is wide: the move must not skip the wall.
	assert.True(t, moveX(obj, 100))
	assert.Equal(t, rightWallX, obj.X+obj.W)

	assert.True(t, moveX(obj, 5))
	assert.Equal(t, rightWallX, obj.X+obj.W)

	assert.False(t, moveX(obj, -30))
	assert.Equal(t, rightWallX-30, obj.X+obj.W)
}

func TestMoveYLandsOnFloorAndHitsCeiling(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, 320, 200, 320, 200)
	obj := components.Object.Get(p).Object

	assert.True(t, moveY(obj, 400))
	assert.Equal(t, floorY, obj.Y+obj.H)

	assert.True(t, moveY(obj, -400))
	assert.Equal(t, 16.0, obj.Y)
}

func TestOneWayPlatformOnlyBlocksFromAbove(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlatform(e, 280, 240, 80, 8)
	p := factory.CreatePlayer(e, 320, 280, 320, 280)
	obj := components.Object.Get(p).Object
	placeFeet(obj, 320, 280)

	// Rising from below passes through.
	assert.False(t, moveY(obj, -60))
	require.Less(t, obj.Y+obj.H, 240.0)

	// Falling back lands on the top.
	assert.True(t, moveY(obj, 60))
	assert.Equal(t, 240.0, obj.Y+obj.H)
}

func TestIntegrateBodyZeroesBlockedAxis(t *testing.T) {
	e := newTestWorld(t)
	p := factory.CreatePlayer(e, 320, floorY-2, 320, floorY-2)
	body := components.Body.Get(p)
	obj := components.Object.Get(p).Object

	body.VelY = 600
	integrateBody(body, obj, tick)

	assert.True(t, body.Landed)
	assert.True(t, body.BlockedY)
	assert.Zero(t, body.VelY)
	assert.Equal(t, floorY, obj.Y+obj.H)
}

func TestOverlapsTagIgnoresTouchingEdges(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateSpikeFloor(e, 100, 300, 100, 28)
	p := factory.CreatePlayer(e, 320, 200, 320, 200)
	obj := components.Object.Get(p).Object

	placeFeet(obj, 150, 300)
	assert.Empty(t, OverlapsTag(obj, tags.ResolvHazard))

	placeFeet(obj, 150, 302)
	assert.Len(t, OverlapsTag(obj, tags.ResolvHazard), 1)
}
