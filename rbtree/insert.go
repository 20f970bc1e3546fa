package rbtree

import "github.com/bnclabs/gorbt/api"

// Insert key into the tree. Fails with ErrorInvalidArgument for a nil
// key or a key that doesn't match the tree's kind, ErrorDuplicateKey if
// the same key pointer is already present and ErrorAllocation if arena
// is full. On failure the tree is left unchanged.
func (t *Tree) Insert(key Key) error {
	if !t.usable() || !validkey(t.kind, key) {
		return api.ErrorInvalidArgument
	}
	if t.find(key) != nilidx {
		t.n_dupkeys++
		return api.ErrorDuplicateKey
	}

	// allocate before linking, nodes slice may move.
	newidx, err := t.arena.alloc(key)
	if err != nil {
		fmsg := "%v insert failed at %v nodes: %v\n"
		warnf(fmsg, t.logprefix, t.arena.n_live, err)
		return err
	}

	parent, idx, goleft := nilidx, t.root, false
	for idx != nilidx {
		parent = idx
		nd := t.nd(idx)
		if goleft = t.compare(key, nd.key) < 0; goleft {
			idx = nd.left
		} else {
			idx = nd.right
		}
	}

	t.nd(newidx).parent = parent
	if parent == nilidx {
		t.root = newidx
	} else if goleft {
		t.nd(parent).left = newidx
	} else {
		t.nd(parent).right = newidx
	}

	t.insertfixup(newidx)
	t.n_count++
	t.n_inserts++
	return nil
}

// insertfixup resolve red-red violation starting at newly attached
// red node n, and force the root black.
func (t *Tree) insertfixup(n uint32) {
	for p := t.parent(n); p != nilidx && t.isred(p); p = t.parent(n) {
		g := t.parent(p) // p is red, hence not root, hence g exists.
		pisleft := t.left(g) == p
		uncle := t.left(g)
		if pisleft {
			uncle = t.right(g)
		}

		if t.isred(uncle) { // case A, push the red up.
			t.setblack(p)
			t.setblack(uncle)
			if g != t.root {
				t.setred(g)
			}
			n = g
			continue
		}

		if pisleft {
			if n == t.right(p) { // case B, triangle into line.
				t.rotateleft(p)
				n, p = p, n
			}
			// case C, line.
			t.setblack(p)
			t.setred(g)
			t.rotateright(g)

		} else {
			if n == t.left(p) {
				t.rotateright(p)
				n, p = p, n
			}
			t.setblack(p)
			t.setred(g)
			t.rotateleft(g)
		}
		break
	}
	t.setblack(t.root)
}
