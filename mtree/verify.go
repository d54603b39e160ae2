package mtree

import (
	"fmt"

	"github.com/bluesky-social/merkletree/digest"
)

// Captures the current root digest, rebuilds from data, and reports whether the fresh root matches.
//
// An empty tree compares absent to absent, and always succeeds. After Verify the tree holds the freshly built graph, so a corrupted root is repaired as a side effect.
func (t *Tree) Verify() bool {
	prev := t.RootDigest()
	t.rebuild()
	ok := prev == t.RootDigest()
	observeVerify(ok)
	if !ok {
		t.logger.Warn("stored root did not match data", "stored", prev, "computed", t.RootDigest())
	}
	return ok
}

// Reports whether a fresh build over the current data produces the expected root digest. An empty tree only matches digest.Empty.
//
// The held node graph is not modified.
func (t *Tree) VerifyRoot(expected digest.Digest) bool {
	return t.CheckRoot(expected) == nil
}

// Like VerifyRoot, but returns a descriptive error wrapping ErrRootMismatch on failure.
func (t *Tree) CheckRoot(expected digest.Digest) error {
	fresh, _ := buildNodes(t.data, t.fanout, t.hasher, t.leafDigest)
	computed := digest.Empty
	if fresh != nil {
		computed = fresh.Digest
	}
	ok := computed == expected
	observeVerify(ok)
	if !ok {
		return fmt.Errorf("%w: expected %q, computed %q", ErrRootMismatch, expected, computed)
	}
	return nil
}
