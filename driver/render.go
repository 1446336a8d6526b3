package driver

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/grasp"
)

// whitePixel is a 1x1 white image scaled and tinted to draw node boxes.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// toRGBA converts a grasp color to a premultiplied color.RGBA.
func toRGBA(c grasp.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// geoM converts a world matrix [a, b, c, d, tx, ty] to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// DrawScene fills screen with the scene's clear color and draws every
// visible sized node as a tinted box under its world transform. Hidden nodes
// hide their subtree.
func DrawScene(screen *ebiten.Image, s *grasp.Scene) {
	if s.ClearColor.A > 0 {
		screen.Fill(toRGBA(s.ClearColor))
	}
	drawNode(screen, pixel(), s.Root())
}

func drawNode(screen, img *ebiten.Image, n *grasp.Node) {
	if !n.Visible {
		return
	}
	if n.Width != 0 && n.Height != 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Concat(geoM(n.WorldTransform()))
		op.ColorScale.ScaleWithColor(toRGBA(n.Color))
		screen.DrawImage(img, op)
	}
	for _, c := range n.Children() {
		drawNode(screen, img, c)
	}
}

// drawOverlay prints FPS/TPS, the active gesture and its pose.
func drawOverlay(screen *ebiten.Image, e *grasp.Engine) {
	text := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nwheel: %s", ebiten.ActualFPS(), ebiten.ActualTPS(), e.WheelMode())
	if g, ok := e.Gesture(); ok {
		text += fmt.Sprintf("\n%s gesture %s", g.Modality, g.ID.String()[:8])
		if p, ok := e.Pose(g.Control); ok {
			text += "\n" + p.Transform()
		}
	}
	ebitenutil.DebugPrint(screen, text)
}
