// Package rbtree implement a self-balancing binary-tree, red-black
// tree, for ordered sets of application owned keys.
//
//   * Keys are one of three kinds, Integer (*int64), Character (*byte)
//     or ByteString (*[]byte or *string), fixed when the tree is created.
//   * Tree stores the key pointer, it never copies key storage.
//   * Two keys are the same if they are the same pointer, ordering among
//     keys is by value. Value-equal keys held by different pointers can
//     co-exist in the tree.
//   * Nodes are allocated from a per-tree arena and addressed by index,
//     slot zero is the black sentinel for every absent child.
//   * Not thread safe, application must serialize access to a tree.
//
package rbtree
