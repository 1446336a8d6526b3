// Package grasp turns raw pointer input into a continuously accumulated 2D
// pose (translation, rotation, scale) applied to a target.
//
// It supports single-pointer drag, multi-contact touch (pinch to scale, twist
// to rotate) and wheel input with modifier keys, independent of whether the
// device is a mouse or a touchscreen.
//
// # Quick start
//
// An [Engine] owns the contact set, the gesture state machine and the
// registry of per-target poses. The host feeds it input events and calls
// [Engine.Tick] once per display refresh:
//
//	scene := grasp.NewScene()
//	card := grasp.NewBox("card", 120, 80, grasp.ColorWhite)
//	scene.Root().AddChild(card)
//
//	engine := grasp.NewEngine(scene)
//	if err := engine.Attach(card, grasp.Options{}); err != nil {
//		log.Fatal(err)
//	}
//
//	// per frame, after feeding input:
//	engine.MouseDown(grasp.MouseButtonLeft, x, y)
//	engine.Tick()
//
// For an ebiten game loop, use the driver package which polls ebiten input,
// translates it into engine events and ticks the engine through a
// fault-tolerant [Scheduler]:
//
//	driver.Run(scene, engine, driver.RunConfig{Title: "grasp", Width: 640, Height: 480})
//
// # Gestures
//
// A gesture starts on a primary mouse press or a touch start that resolves to
// an attached control (the element under the point, or its nearest attached
// ancestor). Only one gesture is active at a time; starting a new one ends the
// current one. Each tick the engine diffs the current input measurement
// against the previous tick's and integrates the change into the target's
// pose, so gestures never snap and a new gesture continues from the pose the
// previous one left behind.
//
// Touch gestures need two contacts unless [Options.SingleTouch] is set.
// Wheel input zooms by default; holding the rotate key (Shift) rotates
// instead. Zoom notches decay geometrically, giving an ease-out animation.
//
// # Output
//
// The pose is emitted as transform text of the fixed form
//
//	translate(<x>px,<y>px) rotate(<deg>deg) scale(<factor>)
//
// to the [Target] and to the optional [Options.OnUpdate] callback.
package grasp
