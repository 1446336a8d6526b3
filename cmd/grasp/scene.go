package main

import (
	"github.com/phanxgames/grasp"
)

// demoScene is the scene shared by the demo and replay commands.
type demoScene struct {
	scene    *grasp.Scene
	controls []*grasp.Node
}

var demoColors = []grasp.Color{
	{R: 0.9, G: 0.3, B: 0.3, A: 1}, // red
	{R: 0.3, G: 0.7, B: 0.9, A: 1}, // blue
	{R: 0.3, G: 0.9, B: 0.5, A: 1}, // green
}

// buildDemo lays out three gesture controls:
//
//   - card: a plain box, rotate and scale with the wheel
//   - photo: a box that also follows a single finger
//   - group: a container whose two children move together
func buildDemo() *demoScene {
	scene := grasp.NewScene()
	scene.ClearColor = grasp.Color{R: 0.137, G: 0.118, B: 0.176, A: 1}

	card := grasp.NewBox("card", 120, 80, demoColors[0])
	card.X, card.Y = 140, 240

	photo := grasp.NewBox("photo", 100, 100, demoColors[1])
	photo.X, photo.Y = 320, 240

	group := grasp.NewContainer("group")
	group.Interactable = true
	group.X, group.Y = 500, 240
	for i, dx := range []float64{-30, 30} {
		child := grasp.NewBox("group-child", 50, 50, demoColors[2])
		child.X = dx
		child.Y = float64(i*20 - 10)
		group.AddChild(child)
	}

	scene.Root().AddChild(card)
	scene.Root().AddChild(photo)
	scene.Root().AddChild(group)
	scene.Update()

	return &demoScene{scene: scene, controls: []*grasp.Node{card, photo, group}}
}

// attach registers every demo control. onUpdate, when non-nil, receives
// each control's updates tagged with its name.
func (d *demoScene) attach(e *grasp.Engine, onUpdate func(name, transform string, p grasp.Pose)) error {
	for _, n := range d.controls {
		opts := grasp.Options{SingleTouch: n.Name == "photo"}
		if onUpdate != nil {
			name := n.Name
			opts.OnUpdate = func(transform string, p grasp.Pose, _ []grasp.Contact) {
				onUpdate(name, transform, p)
			}
		}
		if err := e.Attach(n, opts); err != nil {
			return err
		}
	}
	return nil
}
