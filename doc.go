// Package gorbt implement an ordered set over application owned keys,
// backed by a red-black tree, along with necessary tools and libraries.
//
// api:
//
// Interfaces and errors common to ordered indexes.
//
// lib:
//
// Convinience functions that can be used by other packages. Package shall
// not import packages other than golang's standard packages.
//
// rbtree:
//
// A version of Red Black tree for sorting and retrieving application owned
// keys, Integer, Character or ByteString. Nodes are allocated from a per
// tree arena and the tree is not thread safe.
//
// tools/rbt:
//
// Command line tool to load random keys into a tree, delete some of them,
// validate the tree and print statistics.
package gorbt
