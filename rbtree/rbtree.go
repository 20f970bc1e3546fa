package rbtree

import "fmt"

import "github.com/bnclabs/gorbt/api"
import s "github.com/bnclabs/gosettings"

var _ api.Index = (*Tree)(nil)

// Tree manage a single instance of red-black tree, an ordered set of
// application owned keys.
type Tree struct {
	rbtstats

	name  string
	kind  KeyKind
	root  uint32
	arena *arena
	data  interface{}
	dead  bool

	// settings
	capacity    int64
	prealloc    int64
	heightcheck bool
	setts       s.Settings
	logprefix   string

	// scratch pad
	stack []uint32
}

type rbtstats struct {
	n_count     int64
	n_inserts   int64
	n_deletes   int64
	n_lookups   int64
	n_rotations int64
	n_dupkeys   int64
	n_missing   int64
}

// NewTree create an empty tree for keys of kind. If setts is nil,
// Defaultsettings() is used, otherwise setts override the defaults.
func NewTree(name string, kind KeyKind, setts s.Settings) (*Tree, error) {
	if !kind.valid() {
		errorf("RBT [%s] invalid key kind %v\n", name, kind)
		return nil, api.ErrorInvalidKeyType
	}

	t := &Tree{name: name, kind: kind, root: nilidx}
	t.logprefix = fmt.Sprintf("RBT [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	if t.capacity <= 0 || t.prealloc < 0 {
		fmsg := "%v invalid arena settings capacity:%v prealloc:%v\n"
		errorf(fmsg, t.logprefix, t.capacity, t.prealloc)
		return nil, api.ErrorInvalidArgument
	}
	t.setts = setts
	t.arena = newarena(t.capacity, t.prealloc)
	t.stack = make([]uint32, 0, 64)

	infof("%v started for %v keys ...\n", t.logprefix, kind)
	return t, nil
}

func (t *Tree) usable() bool {
	return t != nil && !t.dead
}

// ID return the name of this tree.
func (t *Tree) ID() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Kind return the key kind fixed at creation.
func (t *Tree) Kind() KeyKind {
	if t == nil {
		return 0
	}
	return t.kind
}

// Count return the number of keys in the tree.
func (t *Tree) Count() int64 {
	if !t.usable() {
		return 0
	}
	return t.n_count
}

// Isactive return false once tree is destroyed.
func (t *Tree) Isactive() bool {
	return t.usable()
}

// Data return the application data attached to this tree, if any.
func (t *Tree) Data() interface{} {
	if !t.usable() {
		return nil
	}
	return t.data
}

// SetData attach application data to this tree. The tree doesn't
// interpret data. Setting nil is not allowed.
func (t *Tree) SetData(data interface{}) error {
	if !t.usable() || data == nil {
		return api.ErrorInvalidArgument
	}
	t.data = data
	return nil
}

// Destroy release all nodes in this tree. Keys are left untouched.
// Destroying an already destroyed tree fails with ErrorInvalidArgument.
func (t *Tree) Destroy() error {
	if !t.usable() {
		return api.ErrorInvalidArgument
	}
	verbosef("%v releasing %v nodes\n", t.logprefix, t.arena.n_live)
	t.arena.release()
	t.root, t.data, t.stack = nilidx, nil, nil
	t.n_count = 0
	t.dead = true
	infof("%v destroyed\n", t.logprefix)
	return nil
}

// Height return the number of nodes on the longest path from root
// to a leaf.
func (t *Tree) Height() int64 {
	if !t.usable() || t.root == nilidx {
		return 0
	}
	type entry struct {
		idx   uint32
		depth int64
	}
	height, stack := int64(0), []entry{{t.root, 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.depth > height {
			height = e.depth
		}
		nd := t.nd(e.idx)
		if nd.left != nilidx {
			stack = append(stack, entry{nd.left, e.depth + 1})
		}
		if nd.right != nilidx {
			stack = append(stack, entry{nd.right, e.depth + 1})
		}
	}
	return height
}

//---- node accessors, index based.

// nd return the node at idx. Returned pointer is valid until the next
// arena allocation.
func (t *Tree) nd(idx uint32) *node {
	return &t.arena.nodes[idx]
}

func (t *Tree) isred(idx uint32) bool {
	return !t.arena.nodes[idx].black
}

func (t *Tree) isblack(idx uint32) bool {
	return t.arena.nodes[idx].black
}

func (t *Tree) setred(idx uint32) {
	if idx == nilidx {
		panic("setred(): sentinel cannot be red, call the programmer")
	}
	t.arena.nodes[idx].black = false
}

func (t *Tree) setblack(idx uint32) {
	t.arena.nodes[idx].black = true
}

func (t *Tree) left(idx uint32) uint32 {
	return t.arena.nodes[idx].left
}

func (t *Tree) right(idx uint32) uint32 {
	return t.arena.nodes[idx].right
}

func (t *Tree) parent(idx uint32) uint32 {
	return t.arena.nodes[idx].parent
}

func (t *Tree) compare(a, b Key) int {
	return compare(t.kind, a, b)
}
