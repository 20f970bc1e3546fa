package rbtree

import "math"
import "unsafe"

import "github.com/bnclabs/gorbt/api"

// nilidx is the sentinel slot, shared by every absent child and by the
// parent of root. It is always black.
const nilidx = uint32(0)

// maxslots is the largest number of nodes addressable by uint32 index,
// excluding the sentinel.
const maxslots = int64(math.MaxUint32 - 1)

const nodesize = int64(unsafe.Sizeof(node{}))

// node defines a node in red-black tree. Links are arena indexes.
type node struct {
	key    Key
	parent uint32
	left   uint32
	right  uint32
	black  bool
	inuse  bool
}

// arena owns every node of a tree. Freed slots are recycled before the
// slice grows.
type arena struct {
	nodes    []node
	freelist []uint32
	capacity int64 // maximum number of live nodes.

	// stats
	n_live   int64
	n_allocs int64
	n_frees  int64
	n_fails  int64
}

func newarena(capacity, prealloc int64) *arena {
	if capacity > maxslots {
		capacity = maxslots
	}
	if prealloc > capacity {
		prealloc = capacity
	}
	a := &arena{
		nodes:    make([]node, 1, prealloc+1),
		freelist: make([]uint32, 0),
		capacity: capacity,
	}
	a.nodes[nilidx] = node{black: true}
	return a
}

// alloc a red node for key. Fails without side effects when arena
// has reached its capacity.
func (a *arena) alloc(key Key) (uint32, error) {
	if a.nodes == nil || a.n_live >= a.capacity {
		a.n_fails++
		return nilidx, api.ErrorAllocation
	}

	var idx uint32
	if n := len(a.freelist); n > 0 {
		idx = a.freelist[n-1]
		a.freelist = a.freelist[:n-1]
	} else {
		idx = uint32(len(a.nodes))
		a.nodes = append(a.nodes, node{})
	}
	a.nodes[idx] = node{key: key, inuse: true}
	a.n_live++
	a.n_allocs++
	return idx, nil
}

func (a *arena) free(idx uint32) {
	if idx == nilidx || !a.nodes[idx].inuse {
		panic("free(): invalid or free slot, call the programmer")
	}
	a.nodes[idx] = node{}
	a.freelist = append(a.freelist, idx)
	a.n_live--
	a.n_frees++
}

// release all slots, arena cannot be used after this.
func (a *arena) release() {
	a.nodes, a.freelist = nil, nil
	a.n_frees += a.n_live
	a.n_live = 0
}

// memory return bytes allocated for slots and for the free list.
func (a *arena) memory() int64 {
	return int64(cap(a.nodes))*nodesize + int64(cap(a.freelist))*4
}

// useful return bytes held by live nodes.
func (a *arena) useful() int64 {
	return a.n_live * nodesize
}
