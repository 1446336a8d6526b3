package grasp

// Scene owns a node tree and resolves points to nodes. It implements
// Locator, so it can be handed straight to NewEngine.
type Scene struct {
	root   *Node
	hitBuf []*Node

	// ClearColor fills the background when the driver draws the scene.
	ClearColor Color
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{root: root}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update refreshes world transforms. Call it once per frame before input is
// processed so hit testing sees the poses written by the previous tick.
func (s *Scene) Update() {
	updateWorldTransform(s.root, identityTransform, false)
}

// ElementAt implements Locator: the topmost interactable node at (x, y).
func (s *Scene) ElementAt(x, y float64) Element {
	if n := s.hitTest(x, y); n != nil {
		return n
	}
	return nil
}

// NodeAt returns the topmost interactable node at (x, y), or nil.
func (s *Scene) NodeAt(x, y float64) *Node {
	return s.hitTest(x, y)
}

// Walk visits every node in painter order.
func (s *Scene) Walk(fn func(n *Node)) {
	var walk func(n *Node)
	walk = func(n *Node) {
		fn(n)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(s.root)
}

// hitTest finds the topmost interactable node at (worldX, worldY).
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}
