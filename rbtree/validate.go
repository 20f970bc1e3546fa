package rbtree

import "fmt"
import "math"
import "errors"

import "github.com/bnclabs/gorbt/api"
import "github.com/bnclabs/gorbt/lib"

// height of a red-black tree with n nodes cannot exceed 2*log2(n+1).
func maxheight(entries int64) float64 {
	return 2 * math.Log2(float64(entries+1))
}

var errRedRoot = errors.New("root is red")

var errRedAfterRed = errors.New("consecutive red spotted")

func unbalancedblacks(key string, lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks at %v {%v,%v}", key, lblacks, rblacks)
}

// Validate walk the full tree and check that root is black, no red node
// has a red child, every path has the same number of blacks, keys are in
// sort order, parent links are consistent and tree height is within
// bounds.
func (t *Tree) Validate() error {
	if !t.usable() {
		return api.ErrorInvalidArgument
	}
	if err := t.validate(); err != nil {
		errorf("%v validate: %v\n", t.logprefix, err)
		return err
	}
	return nil
}

func (t *Tree) validate() error {
	if t.root == nilidx {
		if t.n_count != 0 {
			return fmt.Errorf("empty tree with n_count:%v", t.n_count)
		}
		return nil
	}
	if t.isred(t.root) {
		return errRedRoot
	} else if p := t.parent(t.root); p != nilidx {
		return fmt.Errorf("root has parent %v", p)
	} else if !t.isblack(nilidx) {
		return errors.New("sentinel is red")
	}

	h := lib.NewhistorgramInt64(1, 256, 1)
	nblacks, err := t.validatetree(t.root, 1 /*depth*/, h)
	if err != nil {
		return err
	}
	if err := t.validateorder(); err != nil {
		return err
	}

	if n := h.Samples(); n != t.n_count {
		return fmt.Errorf("found %v nodes, n_count:%v", n, t.n_count)
	} else if n != t.arena.n_live {
		return fmt.Errorf("found %v nodes, arena live:%v", n, t.arena.n_live)
	}
	if t.heightcheck && float64(h.Max()) > maxheight(t.n_count) {
		fmsg := "max height %v exceeds 2*log2(%v+1)"
		return fmt.Errorf(fmsg, h.Max(), t.n_count)
	}
	debugf("%v found %v blacks on every path\n", t.logprefix, nblacks)
	return nil
}

// validatetree return the black height of subtree at idx.
func (t *Tree) validatetree(
	idx uint32, depth int64, h *lib.HistogramInt64) (int64, error) {

	if idx == nilidx {
		return 0, nil
	}
	h.Add(depth)

	nd := t.nd(idx)
	if !nd.inuse {
		return 0, fmt.Errorf("node %v is linked but free", idx)
	}
	for _, child := range []uint32{nd.left, nd.right} {
		if child == nilidx {
			continue
		} else if t.parent(child) != idx {
			fmsg := "child %v of %v points to parent %v"
			return 0, fmt.Errorf(fmsg, child, idx, t.parent(child))
		} else if !nd.black && t.isred(child) {
			return 0, errRedAfterRed
		}
	}

	lblacks, err := t.validatetree(nd.left, depth+1, h)
	if err != nil {
		return 0, err
	}
	rblacks, err := t.validatetree(nd.right, depth+1, h)
	if err != nil {
		return 0, err
	}
	if lblacks != rblacks {
		key := keystring(t.kind, nd.key)
		return 0, unbalancedblacks(key, lblacks, rblacks)
	}
	if nd.black {
		lblacks++
	}
	return lblacks, nil
}

func (t *Tree) validateorder() error {
	var prev Key
	for key := range t.Inorder() {
		if prev != nil && t.compare(prev, key) > 0 {
			fmsg := "sort order, %v is after %v"
			x, y := keystring(t.kind, key), keystring(t.kind, prev)
			return fmt.Errorf(fmsg, x, y)
		}
		prev = key
	}
	return nil
}

// blackheight return the number of black nodes from root to any leaf.
func (t *Tree) blackheight() int64 {
	n := int64(0)
	for idx := t.root; idx != nilidx; idx = t.left(idx) {
		if t.isblack(idx) {
			n++
		}
	}
	return n
}
