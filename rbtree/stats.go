package rbtree

import "fmt"
import "encoding/json"

import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/gorbt/api"
import "github.com/bnclabs/gorbt/lib"

// Stats return tree and arena statistics.
func (t *Tree) Stats() (map[string]interface{}, error) {
	if !t.usable() {
		return nil, api.ErrorInvalidArgument
	}
	stats := t.statsarena(t.statstree(make(map[string]interface{})))
	return stats, nil
}

// Fullstats return Stats() along with statistics that need a full
// walk of the tree.
func (t *Tree) Fullstats() (map[string]interface{}, error) {
	stats, err := t.Stats()
	if err != nil {
		return nil, err
	}
	h_height := lib.NewhistorgramInt64(1, 256, 1)
	t.heightstats(h_height)
	stats["h_height"] = h_height.Fullstats()
	stats["n_blacks"] = t.blackheight()
	return stats, nil
}

func (t *Tree) statstree(stats map[string]interface{}) map[string]interface{} {
	stats["n_count"] = t.n_count
	stats["n_inserts"] = t.n_inserts
	stats["n_deletes"] = t.n_deletes
	stats["n_lookups"] = t.n_lookups
	stats["n_rotations"] = t.n_rotations
	stats["n_dupkeys"] = t.n_dupkeys
	stats["n_missing"] = t.n_missing
	return stats
}

func (t *Tree) statsarena(stats map[string]interface{}) map[string]interface{} {
	a := t.arena
	stats["n_nodes"] = a.n_allocs
	stats["n_frees"] = a.n_frees
	stats["n_allocfails"] = a.n_fails
	stats["arena.capacity"] = a.capacity
	stats["arena.slots"] = int64(len(a.nodes) - 1)
	stats["arena.freeslots"] = int64(len(a.freelist))
	stats["arena.allocated"] = a.memory()
	stats["arena.useful"] = a.useful()
	return stats
}

// heightstats sample the depth of every node.
func (t *Tree) heightstats(h *lib.HistogramInt64) {
	if t.root == nilidx {
		return
	}
	type entry struct {
		idx   uint32
		depth int64
	}
	stack := []entry{{t.root, 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h.Add(e.depth)
		if l := t.left(e.idx); l != nilidx {
			stack = append(stack, entry{l, e.depth + 1})
		}
		if r := t.right(e.idx); r != nilidx {
			stack = append(stack, entry{r, e.depth + 1})
		}
	}
}

// Log statistics, if humanize is true arena figures are logged in
// human readable form.
func (t *Tree) Log(humanize bool) {
	stats, err := t.Fullstats()
	if err != nil {
		warnf("%v log(): %v\n", t.logprefix, err)
		return
	}
	if humanize {
		t.logarena(stats)
	}
	text, err := json.Marshal(stats)
	if err != nil {
		panic(fmt.Errorf("log(): %v", err))
	}
	infof("%v stats %v\n", t.logprefix, string(text))
}

func (t *Tree) logarena(stats map[string]interface{}) {
	alloc := humanize.Bytes(uint64(stats["arena.allocated"].(int64)))
	useful := humanize.Bytes(uint64(stats["arena.useful"].(int64)))
	slots := humanize.Comma(stats["arena.slots"].(int64))
	capacity := humanize.Comma(stats["arena.capacity"].(int64))
	fmsg := "%v arena %v slots of %v, allocated %v useful %v\n"
	infof(fmsg, t.logprefix, slots, capacity, alloc, useful)
}
