package factory

import (
	"github.com/automoto/caged/archetypes"
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given kind with its feet at (x, y).
// The brain is built by the caller so behaviour stays out of the factory.
func CreateEnemy(ecs *ecs.ECS, x, y float64, kind cfg.EnemyKindConfig, brain components.EnemyBrain) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x-kind.Width/2, y-kind.Height, kind.Width, kind.Height)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, kind.Width, kind.Height))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:       kind.Kind,
		TypeConfig: &kind,
		Brain:      brain,
		Facing:     cfg.DirectionLeft,
	})
	components.Body.SetValue(enemy, components.BodyData{
		GravityScale: kind.GravityScale,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: kind.Health,
		Max:     kind.Health,
	})

	return enemy
}
