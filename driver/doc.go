// Package driver runs a grasp engine inside an ebiten game loop.
//
// Each ebiten tick the driver refreshes the scene, polls mouse, touch, wheel
// and keyboard state, translates the changes into engine events and then
// ticks the engine once through a grasp.Scheduler, so a panicking frame is
// logged and the loop keeps running.
package driver
