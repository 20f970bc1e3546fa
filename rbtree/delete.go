package rbtree

import "github.com/bnclabs/gorbt/api"

// Delete key, the same pointer that was inserted, from the tree. Fails
// with ErrorKeyMissing if key is not in the tree.
func (t *Tree) Delete(key Key) error {
	if !t.usable() || !validkey(t.kind, key) {
		return api.ErrorInvalidArgument
	}
	idx := t.find(key)
	if idx == nilidx {
		t.n_missing++
		return api.ErrorKeyMissing
	}
	t.remove(idx)
	return nil
}

// DeleteMin remove and return the smallest key in the tree.
func (t *Tree) DeleteMin() (Key, error) {
	if !t.usable() {
		return nil, api.ErrorInvalidArgument
	} else if t.root == nilidx {
		return nil, api.ErrorKeyMissing
	}
	idx := t.minimum(t.root)
	key := t.nd(idx).key
	t.remove(idx)
	return key, nil
}

// DeleteMax remove and return the largest key in the tree.
func (t *Tree) DeleteMax() (Key, error) {
	if !t.usable() {
		return nil, api.ErrorInvalidArgument
	} else if t.root == nilidx {
		return nil, api.ErrorKeyMissing
	}
	idx := t.maximum(t.root)
	key := t.nd(idx).key
	t.remove(idx)
	return key, nil
}

// remove node s from the tree. With two children, s takes over the key
// of its in-order successor and the successor is removed instead.
func (t *Tree) remove(s uint32) {
	if snd := t.nd(s); snd.left != nilidx && snd.right != nilidx {
		m := t.minimum(snd.right)
		tracef("%v remove %v via successor %v\n", t.logprefix, s, m)
		snd.key = t.nd(m).key
		s = m
	}
	t.removeone(s)
	t.n_count--
	t.n_deletes++
}

// removeone unlink node s having at most one child.
func (t *Tree) removeone(s uint32) {
	snd := t.nd(s)
	child := snd.left
	if child == nilidx {
		child = snd.right
	}
	wasblack := snd.black

	// child may be the sentinel, its parent link is borrowed by fixup.
	t.replacechild(snd.parent, s, child)
	if wasblack {
		t.deletefixup(child)
	}
	t.nd(nilidx).parent = nilidx
	t.arena.free(s)
}

// deletefixup resolve the double-black at x.
func (t *Tree) deletefixup(x uint32) {
	for x != t.root && t.isblack(x) {
		p := t.parent(x)
		if x == t.left(p) {
			w := t.right(p)
			if t.isred(w) { // red sibling, make it black.
				t.setblack(w)
				t.setred(p)
				t.rotateleft(p)
				w = t.right(p)
			}
			if t.isblack(t.left(w)) && t.isblack(t.right(w)) {
				t.setred(w) // defect moves up, ends at a red parent.
				x = p
				continue
			}
			if t.isblack(t.right(w)) { // near child red, triangle.
				t.setblack(t.left(w))
				t.setred(w)
				t.rotateright(w)
				w = t.right(p)
			}
			// far child red, line.
			t.nd(w).black = t.nd(p).black
			t.setblack(p)
			t.setblack(t.right(w))
			t.rotateleft(p)
			x = t.root

		} else {
			w := t.left(p)
			if t.isred(w) {
				t.setblack(w)
				t.setred(p)
				t.rotateright(p)
				w = t.left(p)
			}
			if t.isblack(t.left(w)) && t.isblack(t.right(w)) {
				t.setred(w)
				x = p
				continue
			}
			if t.isblack(t.left(w)) {
				t.setblack(t.right(w))
				t.setred(w)
				t.rotateleft(w)
				w = t.left(p)
			}
			t.nd(w).black = t.nd(p).black
			t.setblack(p)
			t.setblack(t.left(w))
			t.rotateright(p)
			x = t.root
		}
	}
	t.setblack(x)
}
