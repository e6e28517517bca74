package atlaspack

// binaryTreePacker subdivides free space with recursive guillotine cuts. Packs well, but
// is very slow when the extents are large (>512).
type binaryTreePacker struct {
	packerBase
	root *treeNode
}

func newBinaryTree(width, height int) *binaryTreePacker {
	p := &binaryTreePacker{packerBase: newPackerBase(width, height)}
	p.root = &treeNode{width: width, height: height}
	return p
}

func (p *binaryTreePacker) Clear() {
	p.area = 0
	p.root = &treeNode{width: p.width, height: p.height}
}

func (p *binaryTreePacker) AddRect(rect *Rect) bool {
	width, height := rect.Width, rect.Height
	checkSize(width, height)
	if width > p.width || height > p.height {
		return false
	}
	node := p.root.insert(width, height)
	if node == nil {
		return false
	}
	rect.OffsetTo(node.x, node.y)
	p.area += width * height
	return true
}

// treeNode is a region of the packer area: either free, filled, or split into two
// disjoint children by a guillotine cut.
type treeNode struct {
	x, y          int
	width, height int
	left, right   *treeNode
	filled        bool
}

// insert finds a free node of at least the requested size, splitting larger nodes along
// the way, or returns nil when no space remains in this subtree.
func (n *treeNode) insert(width, height int) *treeNode {
	if n.left != nil && n.right != nil {
		if node := n.left.insert(width, height); node != nil {
			return node
		}
		return n.right.insert(width, height)
	}
	if n.filled || width > n.width || height > n.height {
		return nil
	}
	if width == n.width && height == n.height {
		n.filled = true
		return n
	}

	// Cut along the axis with the larger leftover, sizing the left child exactly to the
	// request and leaving the remainder, minus a one-pixel gutter, as the right child.
	widthLeft := n.width - width
	heightLeft := n.height - height
	if widthLeft > heightLeft {
		n.left = &treeNode{
			x: n.x, y: n.y,
			width: width, height: n.height,
		}
		n.right = &treeNode{
			x: n.x + width + 1, y: n.y,
			width: n.width - width - 1, height: n.height,
		}
	} else {
		n.left = &treeNode{
			x: n.x, y: n.y,
			width: n.width, height: height,
		}
		n.right = &treeNode{
			x: n.x, y: n.y + height + 1,
			width: n.width, height: n.height - height - 1,
		}
	}
	return n.left.insert(width, height)
}

// vim: ts=4
