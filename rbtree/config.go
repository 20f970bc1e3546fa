package rbtree

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for a red-black tree instance.
//
// "arena.capacity" (int64)
//		Maximum number of live nodes in the tree. Insert fails with
//		api.ErrorAllocation once this limit is reached. Default is
//		the number of nodes that fit in half of free RAM.
//
// "arena.prealloc" (int64, default: 64)
//		Number of node slots to reserve when the tree is created.
//
// "validate.heightcheck" (bool, default: true)
//		Validate() shall fail if tree height exceeds 2*log2(n+1).
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	capacity := maxslots
	if free > 0 {
		if n := int64(free/2) / nodesize; n < capacity {
			capacity = n
		}
	}
	return s.Settings{
		"arena.capacity":       capacity,
		"arena.prealloc":       int64(64),
		"validate.heightcheck": true,
	}
}

func (t *Tree) readsettings(setts s.Settings) {
	t.capacity = setts.Int64("arena.capacity")
	t.prealloc = setts.Int64("arena.prealloc")
	t.heightcheck = setts.Bool("validate.heightcheck")
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		return 0, 0, 0
	}
	return mem.Total, mem.Used, mem.Free
}
