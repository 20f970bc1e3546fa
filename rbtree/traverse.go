package rbtree

import "iter"

import "github.com/bnclabs/gorbt/api"

// Each sequence below walks the tree as it is when iteration starts.
// Sequences can be ranged over any number of times, but not while
// the tree is being mutated.

// Preorder return keys in node, left, right order.
func (t *Tree) Preorder() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		if !t.usable() {
			return
		}
		for idx := range t.indexes() {
			if !yield(t.nd(idx).key) {
				return
			}
		}
	}
}

// Inorder return keys in sort order.
func (t *Tree) Inorder() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		if !t.usable() {
			return
		}
		stack := make([]uint32, 0, t.maxdepth())
		idx := t.root
		for idx != nilidx || len(stack) > 0 {
			for ; idx != nilidx; idx = t.left(idx) {
				stack = append(stack, idx)
			}
			idx = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.nd(idx).key) {
				return
			}
			idx = t.right(idx)
		}
	}
}

// Postorder return keys in left, right, node order.
func (t *Tree) Postorder() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		if !t.usable() {
			return
		}
		stack := make([]uint32, 0, t.maxdepth())
		idx, last := t.root, nilidx
		for idx != nilidx || len(stack) > 0 {
			if idx != nilidx {
				stack = append(stack, idx)
				idx = t.left(idx)
				continue
			}
			top := stack[len(stack)-1]
			if r := t.right(top); r != nilidx && r != last {
				idx = r
				continue
			}
			stack = stack[:len(stack)-1]
			if !yield(t.nd(top).key) {
				return
			}
			last = top
		}
	}
}

// Walk keys in sort order until callb returns false.
func (t *Tree) Walk(callb api.KeyCallb) {
	for key := range t.Inorder() {
		if !callb(key) {
			return
		}
	}
}

// indexes return node indexes in pre-order.
func (t *Tree) indexes() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if t.root == nilidx {
			return
		}
		stack := make([]uint32, 0, 2*t.maxdepth())
		stack = append(stack, t.root)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(idx) {
				return
			}
			if r := t.right(idx); r != nilidx {
				stack = append(stack, r)
			}
			if l := t.left(idx); l != nilidx {
				stack = append(stack, l)
			}
		}
	}
}

// maxdepth is an upper bound on tree height, used to size stacks.
func (t *Tree) maxdepth() int {
	return int(maxheight(t.n_count)) + 1
}
