package mtree

import (
	"fmt"
	"strconv"

	"github.com/bluesky-social/merkletree/digest"
)

// Represents a vertex in the tree. A leaf has no children. Each node exclusively owns its children: nodes are never shared between parents or between tree generations.
type Node struct {
	Digest   digest.Digest
	Children []*Node
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Number of layers below this node; zero for leaves.
//
// All nodes on the same layer have the same height, so following the first child is sufficient.
func (n *Node) Height() int {
	h := 0
	for c := n; !c.IsLeaf(); c = c.Children[0] {
		h++
	}
	return h
}

// Number of leaves (data elements) covered by this sub-tree.
func (n *Node) LeafCount() int {
	if n.IsLeaf() {
		return 1
	}
	count := 0
	for _, c := range n.Children {
		count += c.LeafCount()
	}
	return count
}

// Recursively checks that every interior node's digest is the hash of its children's concatenated digests.
//
// This detects tampering within a node graph, but can not say anything about leaf digests, since the data values are not part of the graph.
func (n *Node) VerifyStructure(h digest.Hasher) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidStructure)
	}
	if n.Digest.IsEmpty() {
		return fmt.Errorf("%w: node missing digest", ErrInvalidStructure)
	}
	if n.IsLeaf() {
		return nil
	}
	height := -1
	for _, c := range n.Children {
		if err := c.VerifyStructure(h); err != nil {
			return err
		}
		ch := c.Height()
		if height >= 0 && ch != height {
			return fmt.Errorf("%w: children at mixed heights", ErrInvalidStructure)
		}
		height = ch
	}
	if d := concatChildren(h, n.Children); d != n.Digest {
		return fmt.Errorf("%w: digest %s does not match children (%s)", ErrInvalidStructure, n.Digest, d)
	}
	return nil
}

// LeafDigest computes the digest of a leaf holding value v.
func LeafDigest(h digest.Hasher, v int) digest.Digest {
	return h.Sum([]byte(strconv.Itoa(v)))
}

func concatChildren(h digest.Hasher, children []*Node) digest.Digest {
	parts := make([]digest.Digest, len(children))
	for i, c := range children {
		parts[i] = c.Digest
	}
	return digest.Concat(h, parts...)
}
