package main

import "os"
import "fmt"
import "math/rand"

import hm "github.com/dustin/go-humanize"

import "github.com/bnclabs/gorbt/lib"
import "github.com/bnclabs/gorbt/rbtree"

func insertkeys(tree *rbtree.Tree, rnd *rand.Rand, count int) []rbtree.Key {
	keys := make([]rbtree.Key, 0, count)
	for i := 0; i < count; i++ {
		key := makekey(rnd)
		if err := tree.Insert(key); err != nil {
			fmt.Printf("insert stopped after %v keys: %v\n", len(keys), err)
			break
		}
		keys = append(keys, key)
	}
	return keys
}

func deletekeys(
	tree *rbtree.Tree, rnd *rand.Rand, keys []rbtree.Key, count int) int {

	rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	n := 0
	for _, key := range keys[:count] {
		if err := tree.Delete(key); err != nil {
			fmt.Printf("delete failed: %v\n", err)
			continue
		}
		n++
	}
	return n
}

func makekey(rnd *rand.Rand) rbtree.Key {
	switch options.kind {
	case rbtree.Integer:
		key := rnd.Int63n(int64(options.n)*10) - int64(options.n)*5
		return &key
	case rbtree.Character:
		key := byte(32 + rnd.Intn(95))
		return &key
	}
	min, max := options.klen[0], options.klen[1]
	key := make([]byte, rnd.Intn(max-min)+min)
	for i := range key {
		key[i] = byte(97 + rnd.Intn(26))
	}
	return &key
}

func printstats(tree *rbtree.Tree) {
	stats, err := tree.Fullstats()
	if err != nil {
		fmt.Printf("stats failed: %v\n", err)
		return
	}
	alloc := hm.Bytes(uint64(stats["arena.allocated"].(int64)))
	useful := hm.Bytes(uint64(stats["arena.useful"].(int64)))
	fmsg := "Tree{count:%v height:%v blacks:%v rotations:%v}\n"
	fmt.Printf(fmsg, tree.Count(), tree.Height(), stats["n_blacks"],
		hm.Comma(stats["n_rotations"].(int64)))
	fmsg = "Arena{slots:%v free:%v allocated:%v useful:%v}\n"
	fmt.Printf(fmsg, hm.Comma(stats["arena.slots"].(int64)),
		hm.Comma(stats["arena.freeslots"].(int64)), alloc, useful)
	fmt.Println(lib.Prettystats(stats, true))
}

func dotdump(tree *rbtree.Tree, filename string) error {
	fd, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fd.Close()
	return tree.Dotdump(fd)
}
