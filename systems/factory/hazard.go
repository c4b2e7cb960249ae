package factory

import (
	"github.com/automoto/caged/archetypes"
	"github.com/automoto/caged/components"
	"github.com/automoto/caged/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpikeFloor creates a disarmed hazard zone. The arena arms it for
// layouts that use it.
func CreateSpikeFloor(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hazard

	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	components.Hazard.SetValue(hazard, components.HazardData{Armed: false})
	addToSpace(ecs, obj)

	return hazard
}
