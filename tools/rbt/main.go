package main

import "os"
import "fmt"
import "flag"
import "time"
import "math/rand"
import "runtime/pprof"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"
import hm "github.com/dustin/go-humanize"

import "github.com/bnclabs/gorbt/lib"
import "github.com/bnclabs/gorbt/rbtree"

var options struct {
	kind     rbtree.KeyKind
	n        int
	del      float64
	klen     [2]int // min-klen, max-klen
	capacity int64
	seed     int64
	dump     bool
	dotfile  string
	pprof    string
	loglevel string
}

func argParse() {
	var kind, klen string

	flag.StringVar(&kind, "kind", "int",
		"key kind, int or char or string")
	flag.IntVar(&options.n, "n", 1000,
		"number of keys to generate and insert")
	flag.Float64Var(&options.del, "del", 0.5,
		"fraction of inserted keys to delete, between [0,1]")
	flag.StringVar(&klen, "klen", "",
		"minklen, maxklen - generate string keys between [minklen,maxklen)")
	flag.Int64Var(&options.capacity, "capacity", 0,
		"maximum number of nodes in the tree, 0 for default")
	flag.Int64Var(&options.seed, "seed", 0,
		"seed for random generator, 0 picks current time")
	flag.BoolVar(&options.dump, "dump", false,
		"print the tree after load")
	flag.StringVar(&options.dotfile, "dotfile", "",
		"dump dot file output of the tree")
	flag.StringVar(&options.pprof, "pprof", "",
		"dump cpu-profile to file")
	flag.StringVar(&options.loglevel, "log", "",
		"enable tree logging at level, info or debug or trace")
	flag.Parse()

	var err error
	if options.kind, err = rbtree.ParseKeyKind(kind); err != nil {
		fmt.Printf("invalid -kind %q: %v\n", kind, err)
		os.Exit(1)
	}
	ks := lib.Parseints(klen, 4, 16)
	options.klen = [2]int{ks[0], ks[1]}
	if options.klen[0] < 0 || options.klen[1] <= options.klen[0] {
		fmt.Printf("invalid -klen %v\n", options.klen)
		os.Exit(1)
	}
	if options.del < 0 || options.del > 1 {
		fmt.Printf("invalid -del %v\n", options.del)
		os.Exit(1)
	}
	if options.seed == 0 {
		options.seed = time.Now().UnixNano()
	}
}

func main() {
	argParse()

	if options.loglevel != "" {
		log.SetLogger(nil, map[string]interface{}{
			"log.level":      options.loglevel,
			"log.colorfatal": "red",
			"log.colorerror": "hired",
			"log.colorwarn":  "yellow",
		})
		rbtree.LogComponents("self")
	}

	if options.pprof != "" {
		fd, err := os.Create(options.pprof)
		if err != nil {
			fmt.Printf("unable to create cpu-profile: %v\n", err)
			os.Exit(1)
		}
		defer fd.Close()
		pprof.StartCPUProfile(fd)
		defer pprof.StopCPUProfile()
	}

	setts := s.Settings{}
	if options.capacity > 0 {
		setts["arena.capacity"] = options.capacity
	}
	tree, err := rbtree.NewTree("cmdline", options.kind, setts)
	if err != nil {
		fmt.Printf("unable to create tree: %v\n", err)
		os.Exit(1)
	}
	defer tree.Destroy()

	fmt.Printf("seed: %v\n", options.seed)
	rnd := rand.New(rand.NewSource(options.seed))

	now := time.Now()
	keys := insertkeys(tree, rnd, options.n)
	fmsg := "Took %v to insert %v keys\n"
	fmt.Printf(fmsg, time.Since(now), hm.Comma(int64(len(keys))))

	now = time.Now()
	ndel := deletekeys(tree, rnd, keys, int(float64(len(keys))*options.del))
	fmsg = "Took %v to delete %v keys\n"
	fmt.Printf(fmsg, time.Since(now), hm.Comma(int64(ndel)))

	now = time.Now()
	if err := tree.Validate(); err != nil {
		fmt.Printf("validate failed: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("Took %v to validate %v keys\n", time.Since(now), tree.Count())

	printstats(tree)
	if options.dump {
		tree.Dump(os.Stdout)
	}
	if options.dotfile != "" {
		if err := dotdump(tree, options.dotfile); err != nil {
			fmt.Printf("dotdump failed: %v\n", err)
		}
	}
	tree.Log(true)
}
