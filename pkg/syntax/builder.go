package syntax

// NewNode creates a new node of the specified kind and class.
// The node has no children and a zero span.
func NewNode(kind string, class Class) *Node {
	return &Node{Kind: kind, Class: class}
}

// NewDocument creates a document root node spanning [0, end).
func NewDocument(end int) *Node {
	return &Node{Kind: "document", Class: ClassDocument, FullStart: 0, End: end}
}

// AppendChild appends a child node to a parent, maintaining the
// sibling links. The child must not already belong to another parent.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}
