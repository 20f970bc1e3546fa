package rbtree

// find the node holding exactly key, the same pointer. Value-equal keys
// may sit on either side of each other after rotations, hence both
// subtrees of an equal node are searched.
func (t *Tree) find(key Key) uint32 {
	t.n_lookups++
	stack := append(t.stack[:0], t.root)
	defer func() { t.stack = stack[:0] }()

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for idx != nilidx {
			nd := t.nd(idx)
			if nd.key == key {
				return idx
			}
			switch cmp := t.compare(key, nd.key); {
			case cmp < 0:
				idx = nd.left
			case cmp > 0:
				idx = nd.right
			default:
				if nd.left != nilidx {
					stack = append(stack, nd.left)
				}
				idx = nd.right
			}
		}
	}
	return nilidx
}

// Has return true if key, the same pointer, is in the tree.
func (t *Tree) Has(key Key) bool {
	if !t.usable() || !validkey(t.kind, key) {
		return false
	}
	return t.find(key) != nilidx
}

// Min return the smallest key in the tree.
func (t *Tree) Min() (Key, bool) {
	if !t.usable() || t.root == nilidx {
		return nil, false
	}
	return t.nd(t.minimum(t.root)).key, true
}

// Max return the largest key in the tree.
func (t *Tree) Max() (Key, bool) {
	if !t.usable() || t.root == nilidx {
		return nil, false
	}
	return t.nd(t.maximum(t.root)).key, true
}

// minimum return the leftmost node under idx.
func (t *Tree) minimum(idx uint32) uint32 {
	for l := t.left(idx); l != nilidx; l = t.left(idx) {
		idx = l
	}
	return idx
}

// maximum return the rightmost node under idx.
func (t *Tree) maximum(idx uint32) uint32 {
	for r := t.right(idx); r != nilidx; r = t.right(idx) {
		idx = r
	}
	return idx
}
