// Package ecs provides ECS adapters for grasp pose updates.
//
// The primary adapter is [NewDonburiSink], which forwards every pose update
// of a [grasp.Engine] into a [Donburi] world as a typed event. Subscribe to
// [PoseUpdateEventType] in your ECS systems to receive them.
//
// Usage:
//
//	engine := grasp.NewEngine(scene, grasp.WithSink(ecs.NewDonburiSink(world)))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
