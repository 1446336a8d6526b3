package grasp

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// nodeIDCounter is a plain counter; the scene is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the scene graph. Nodes implement Element (for the
// ancestor walk at gesture start), Target (poses write X, Y, Rotation and
// Scale) and PoseSource (their initial fields seed the origin pose).
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Rotation is in degrees, matching Pose.
	X, Y     float64
	Rotation float64
	Scale    float64
	PivotX   float64
	PivotY   float64

	// Size and look, used by default hit testing and by the driver.
	Width, Height float64
	Color         Color

	// Interaction
	Visible      bool
	Interactable bool
	HitShape     HitShape

	// Transform is the last transform text applied by a gesture.
	Transform string

	// Metadata
	UserData any

	worldTransform [6]float64
	transformDirty bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.worldTransform = identityTransform
}

// NewContainer creates a node with no size. It is not hit-testable unless a
// HitShape is set, but can still be attached as a gesture control for its
// descendants.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewBox creates an interactable w×h node pivoting on its center.
func NewBox(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Width: w, Height: h}
	nodeDefaults(n)
	n.Color = c
	n.Interactable = true
	n.PivotX, n.PivotY = w/2, h/2
	return n
}

// ParentElement implements Element.
func (n *Node) ParentElement() Element {
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

// ApplyTransform implements Target.
func (n *Node) ApplyTransform(transform string, p Pose) {
	n.X = p.Translation.X
	n.Y = p.Translation.Y
	n.Rotation = p.Rotation
	n.Scale = p.Scale
	n.Transform = transform
	n.transformDirty = true
}

// InitialPose implements PoseSource.
func (n *Node) InitialPose() Pose {
	return Pose{Translation: Vec2{n.X, n.Y}, Rotation: n.Rotation, Scale: n.Scale}
}

// MarkDirty forces the world transform to be recomputed on the next
// Scene.Update. Call it after setting transform fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("grasp: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("grasp: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("grasp: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
