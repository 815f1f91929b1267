package vdom

// AppendChild adds child as the last child of v, detaching it from any
// previous parent first. Fragments are flattened into their children.
func (v *VNode) AppendChild(child *VNode) {
	if v == nil || child == nil {
		return
	}
	for _, n := range flatten(child) {
		n.Remove()
		n.Parent = v
		v.Children = append(v.Children, n)
	}
}

// PrependChild adds child as the first child of v.
func (v *VNode) PrependChild(child *VNode) {
	if v == nil || child == nil {
		return
	}
	if len(v.Children) == 0 {
		v.AppendChild(child)
		return
	}
	v.InsertBefore(child, v.Children[0])
}

// InsertBefore inserts child immediately before ref. A ref that is not a
// child of v appends instead.
func (v *VNode) InsertBefore(child, ref *VNode) {
	if v == nil || child == nil {
		return
	}
	nodes := flatten(child)
	for _, n := range nodes {
		n.Remove()
	}
	idx := v.indexOf(ref)
	if idx < 0 {
		for _, n := range nodes {
			n.Parent = v
			v.Children = append(v.Children, n)
		}
		return
	}
	for _, n := range nodes {
		n.Parent = v
	}
	children := make([]*VNode, 0, len(v.Children)+len(nodes))
	children = append(children, v.Children[:idx]...)
	children = append(children, nodes...)
	children = append(children, v.Children[idx:]...)
	v.Children = children
}

// RemoveChild detaches child from v. It returns false if child is not a
// child of v.
func (v *VNode) RemoveChild(child *VNode) bool {
	idx := v.indexOf(child)
	if idx < 0 {
		return false
	}
	v.Children = append(v.Children[:idx:idx], v.Children[idx+1:]...)
	child.Parent = nil
	return true
}

// Remove detaches v from its parent. Removing a detached node is a no-op
// and returns false.
func (v *VNode) Remove() bool {
	if v == nil || v.Parent == nil {
		return false
	}
	return v.Parent.RemoveChild(v)
}

// ReplaceChildren detaches all children of v and appends nodes.
func (v *VNode) ReplaceChildren(nodes ...*VNode) {
	if v == nil {
		return
	}
	for _, child := range v.Children {
		child.Parent = nil
	}
	v.Children = nil
	for _, n := range nodes {
		v.AppendChild(n)
	}
}

// ReplaceWith puts nodes in v's place and detaches v. It returns false if
// v has no parent.
func (v *VNode) ReplaceWith(nodes ...*VNode) bool {
	if v == nil || v.Parent == nil {
		return false
	}
	parent := v.Parent
	for _, n := range nodes {
		parent.InsertBefore(n, v)
	}
	return parent.RemoveChild(v)
}

func (v *VNode) indexOf(child *VNode) int {
	if v == nil || child == nil || child.Parent != v {
		return -1
	}
	for i, c := range v.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// flatten expands fragments so they never end up attached to the tree.
func flatten(n *VNode) []*VNode {
	if n.Kind != KindFragment {
		return []*VNode{n}
	}
	out := make([]*VNode, 0, len(n.Children))
	for _, c := range append([]*VNode(nil), n.Children...) {
		c.Parent = nil
		out = append(out, flatten(c)...)
	}
	n.Children = nil
	return out
}
