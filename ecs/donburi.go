package ecs

import (
	"github.com/phanxgames/grasp"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PoseUpdateEventType is the Donburi event type for grasp pose updates.
// Subscribe to this in your ECS systems to receive every active tick's pose.
var PoseUpdateEventType = events.NewEventType[grasp.Update]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an UpdateSink backed by a Donburi world. Pass it to
// grasp.WithSink; updates are published to PoseUpdateEventType and consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) grasp.UpdateSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitUpdate(u grasp.Update) {
	PoseUpdateEventType.Publish(s.world, u)
}
