package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bluesky-social/merkletree/mtree"

	"github.com/xlab/treeprint"
)

// number of trailing digest characters shown in abbreviated tree output
const shortDigestLen = 10

// Writes one line per node, breadth first, indented by depth.
func writeLevels(w io.Writer, root *mtree.Node) {
	mtree.Walk(root, func(n *mtree.Node, depth int) bool {
		fmt.Fprintf(w, "%sLevel %d: %s\n", strings.Repeat(" ", depth), depth, n.Digest)
		return true
	})
}

func renderTree(root *mtree.Node, full bool) string {
	if root == nil {
		return mtree.EmptyTreeIndicator
	}
	tree := treeprint.NewWithRoot(displayNode(root, full))
	addChildren(tree, root, full)
	return tree.String()
}

func addChildren(tree treeprint.Tree, n *mtree.Node, full bool) {
	for _, c := range n.Children {
		if c.IsLeaf() {
			tree.AddNode(displayNode(c, full))
			continue
		}
		addChildren(tree.AddBranch(displayNode(c, full)), c, full)
	}
}

func displayNode(n *mtree.Node, full bool) string {
	d := n.Digest.String()
	if !full {
		d = n.Digest.Short(shortDigestLen)
	}
	connector := "─◉"
	if n.IsLeaf() {
		connector = "─◌"
	}
	return "[" + d + "]" + connector
}
