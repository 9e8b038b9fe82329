package inspect

// Node is one element of the rendered screen: the page, its text blocks, the
// comparison slider and the slider's layers and handle. Bounds are terminal
// cells for page elements and slider cells for the slider's children.
type Node struct {
	Type      string                 `json:"type"`
	ID        string                 `json:"id,omitempty"`
	Bounds    Bounds                 `json:"bounds"`
	Visible   bool                   `json:"visible"`
	State     map[string]interface{} `json:"state,omitempty"`
	Styles    *StyleInfo             `json:"styles,omitempty"`
	Children  []*Node                `json:"children,omitempty"`
	Content   string                 `json:"content,omitempty"`
	Truncated *TruncationInfo        `json:"truncated,omitempty"`
}

type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether the cell (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// StyleInfo is the inspectable part of a lipgloss style.
type StyleInfo struct {
	Foreground    string   `json:"foreground,omitempty"`
	Background    string   `json:"background,omitempty"`
	Bold          bool     `json:"bold,omitempty"`
	Italic        bool     `json:"italic,omitempty"`
	Underline     bool     `json:"underline,omitempty"`
	Border        string   `json:"border,omitempty"`
	BorderColor   string   `json:"border_color,omitempty"`
	Padding       []int    `json:"padding,omitempty"` // top, right, bottom, left
	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// TruncationInfo records text that was cut to fit, in cells.
type TruncationInfo struct {
	OriginalLength int  `json:"original_length"`
	DisplayLength  int  `json:"display_length"`
	Ellipsis       bool `json:"ellipsis"`
}

func NewNode(nodeType string) *Node {
	return &Node{Type: nodeType, Visible: true, State: map[string]interface{}{}}
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = map[string]interface{}{}
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// AddChild appends child and returns n, not the child.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

func (n *Node) WithTruncation(original, displayed int, ellipsis bool) *Node {
	n.Truncated = &TruncationInfo{OriginalLength: original, DisplayLength: displayed, Ellipsis: ellipsis}
	return n
}

// Find returns the first node with the given ID in a depth-first walk, or nil.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}
