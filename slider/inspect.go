package slider

import (
	"math"

	"whitebox/inspect"
)

var _ inspect.Introspectable = (*Slider)(nil)

// InspectNode reports the visual tree as an inspection node. Bounds are
// rounded to whole cells; exact values are kept in the node state.
func (s *Slider) InspectNode() *inspect.Node {
	t := s.Render()
	return t.Node()
}

// Node converts the tree to an inspection node.
func (t VisualTree) Node() *inspect.Node {
	root := inspect.NewNode("ComparisonSlider").
		WithID("slider").
		WithBounds(0, 0, cells(t.Geometry.Width), cells(t.Geometry.Height)).
		WithState("position", t.Boundary).
		WithState("phase", t.Phase.String()).
		WithState("settling", t.Settling)

	root.AddChild(layerNode("background", t.Background))
	root.AddChild(layerNode("foreground", t.Foreground))
	root.AddChild(inspect.NewNode("Handle").
		WithID("handle").
		WithBounds(cells(t.Handle.X), cells(t.Handle.Y), cells(t.Handle.W), cells(t.Handle.H)).
		WithState("center", t.Boundary))
	return root
}

func layerNode(id string, l Layer) *inspect.Node {
	n := inspect.NewNode("ImageLayer").
		WithID(id).
		WithBounds(cells(l.Frame.X), cells(l.Frame.Y), cells(l.Frame.W), cells(l.Frame.H)).
		WithState("image", string(l.Image)).
		WithState("clip_width", l.Frame.W)
	n.Visible = l.Frame.W > 0 && l.Frame.H > 0
	return n
}

func cells(v float64) int {
	return int(math.Round(v))
}
