package mtree

import (
	"testing"

	"github.com/bluesky-social/merkletree/digest"

	"github.com/stretchr/testify/assert"
)

func TestVerifyUntouched(t *testing.T) {
	for _, n := range []int{1, 2, 4, 5, 16, 17, 100} {
		tree := NewFromData(seq(n))
		assert.True(t, tree.Verify(), "size %d", n)
		assert.True(t, tree.Verify(), "size %d, second pass", n)
	}
}

func TestVerifyDetectsCorruptRoot(t *testing.T) {
	assert := assert.New(t)

	tree := NewFromData(seq(5))
	good := tree.RootDigest()
	tree.Root().Digest = "0"
	assert.False(tree.Verify())

	// verify leaves the tree holding a freshly built graph
	assert.Equal(good, tree.RootDigest())
	assert.True(tree.Verify())
}

func TestVerifyDetectsChangedData(t *testing.T) {
	tree := NewFromData(seq(5))
	tree.data[2] = 33
	assert.False(t, tree.Verify())
}

func TestCheckRoot(t *testing.T) {
	assert := assert.New(t)

	tree := NewFromData([]int{1, 2, 3, 4, 5})
	assert.NoError(tree.CheckRoot("87716858728042534"))
	assert.True(tree.VerifyRoot("87716858728042534"))

	err := tree.CheckRoot("87716858728042535")
	assert.ErrorIs(err, ErrRootMismatch)
	assert.Contains(err.Error(), "87716858728042534")
	assert.False(tree.VerifyRoot(digest.Empty))

	// the held root is not replaced by an external check
	root := tree.Root()
	tree.CheckRoot("nope")
	assert.Same(root, tree.Root())
}
