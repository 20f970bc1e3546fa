package rbtree

/*
    X             Y
  A   Y   =>    X   C
     B C       A B
*/
func (t *Tree) rotateleft(x uint32) uint32 {
	y := t.right(x)
	if y == nilidx {
		panic("rotateleft(): missing right child, call the programmer")
	}
	xnd, ynd := t.nd(x), t.nd(y)

	xnd.right = ynd.left
	if ynd.left != nilidx {
		t.nd(ynd.left).parent = x
	}
	t.replacechild(xnd.parent, x, y)
	ynd.left = x
	xnd.parent = y
	t.n_rotations++
	return y
}

/*
      Y           X
    X   C  =>   A   Y
   A B             B C
*/
func (t *Tree) rotateright(y uint32) uint32 {
	x := t.left(y)
	if x == nilidx {
		panic("rotateright(): missing left child, call the programmer")
	}
	xnd, ynd := t.nd(x), t.nd(y)

	ynd.left = xnd.right
	if xnd.right != nilidx {
		t.nd(xnd.right).parent = y
	}
	t.replacechild(ynd.parent, y, x)
	xnd.right = y
	ynd.parent = x
	t.n_rotations++
	return x
}

// replacechild make newc take oldc's place under parent, or as root
// when parent is the sentinel. newc may be the sentinel.
func (t *Tree) replacechild(parent, oldc, newc uint32) {
	if parent == nilidx {
		t.root = newc
	} else if pnd := t.nd(parent); pnd.left == oldc {
		pnd.left = newc
	} else {
		pnd.right = newc
	}
	t.nd(newc).parent = parent
}
