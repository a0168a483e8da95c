package figma

import figskema "github.com/reoring/figskema"

// pendingNode is a raw node waiting on the assembly stack together with the
// slot its decoded value goes into.
type pendingNode struct {
	raw any
	at  figskema.PathRef
	dst *Node
}

// tree decodes raw and its whole subtree. Nesting is handled with an explicit
// stack; children keep input order and a node without children gets an
// empty, non-nil slice.
func (d *decoder) tree(raw any, at figskema.PathRef) Node {
	var root Node
	stack := []pendingNode{{raw: raw, at: at, dst: &root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f := d.object(p.raw, p.at)
		n := nodeTable.decodeOne(f)
		if d.failed() {
			return nil
		}
		d.nodes++
		*p.dst = n

		kids, kidsAt := f.OptList("children")
		if d.failed() {
			return nil
		}
		base := n.Base()
		base.Children = make([]Node, len(kids))
		// reversed so the first child is decoded next
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, pendingNode{raw: kids[i], at: kidsAt.Index(i), dst: &base.Children[i]})
		}
	}
	return root
}

// Walk visits root and its descendants depth-first in document order. fn
// returning false skips the children of that node.
func Walk(root Node, fn func(n Node, depth int) bool) {
	if root == nil {
		return
	}
	type item struct {
		n     Node
		depth int
	}
	stack := []item{{root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(it.n, it.depth) {
			continue
		}
		kids := it.n.Base().Children
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, item{kids[i], it.depth + 1})
		}
	}
}

// Find returns the first node in document order with the given id.
func Find(root Node, id string) (Node, bool) {
	var found Node
	Walk(root, func(n Node, _ int) bool {
		if found != nil {
			return false
		}
		if n.Base().ID == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// Index maps node ids to nodes of one decoded tree.
type Index map[string]Node

// NewIndex indexes root and all of its descendants. When ids repeat the first
// node in document order wins.
func NewIndex(root Node) Index {
	idx := Index{}
	Walk(root, func(n Node, _ int) bool {
		id := n.Base().ID
		if _, dup := idx[id]; !dup {
			idx[id] = n
		}
		return true
	})
	return idx
}

// Node returns the node with the given id.
func (idx Index) Node(id string) (Node, bool) {
	n, ok := idx[id]
	return n, ok
}

// Parent returns the parent of the node with the given id within root.
func Parent(root Node, id string) (Node, bool) {
	var parent Node
	Walk(root, func(n Node, _ int) bool {
		if parent != nil {
			return false
		}
		for _, c := range n.Base().Children {
			if c.Base().ID == id {
				parent = n
				return false
			}
		}
		return true
	})
	return parent, parent != nil
}
