package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bluesky-social/merkletree/digest"
	"github.com/bluesky-social/merkletree/mtree"

	"github.com/stretchr/testify/assert"
)

func TestWriteLevelsEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeLevels(&buf, nil)
	assert.Empty(t, buf.String())
	assert.Equal(t, mtree.EmptyTreeIndicator, renderTree(nil, false))
}

func TestRenderTreeSingleLeaf(t *testing.T) {
	root := mtree.Build([]int{7}, 4, digest.FNV1a{})
	assert.Equal(t, "[12638132224974231446]─◌", strings.TrimSpace(renderTree(root, true)))
	assert.Equal(t, "[…4974231446]─◌", strings.TrimSpace(renderTree(root, false)))
}

func TestRenderTreeBranches(t *testing.T) {
	root := mtree.Build([]int{1, 2, 3, 4, 5}, 4, digest.FNV1a{})
	out := renderTree(root, false)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// root, two interior nodes, five leaves
	assert.Len(t, lines, 8)
	assert.Equal(t, "[…8728042534]─◉", lines[0])
}
