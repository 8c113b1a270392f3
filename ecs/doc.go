// Package ecs provides ECS adapters for nodegraph's graph events.
//
// The primary adapter is [NewDonburiSink], which bridges graph changes
// (connections made and deleted, node moves, selection changes) into a
// [Donburi] world as typed events. Subscribe to [GraphEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	canvas.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
