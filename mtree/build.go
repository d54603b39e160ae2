package mtree

import (
	"github.com/bluesky-social/merkletree/digest"
)

const DefaultFanout = 4

// Builds a complete node graph from data, returning the root. Returns nil if data is empty.
//
// Fanout values below 2 can never converge to a single root, and are treated as DefaultFanout.
func Build(data []int, fanout int, h digest.Hasher) *Node {
	root, _ := buildNodes(data, fanout, h, func(v int) digest.Digest {
		return LeafDigest(h, v)
	})
	return root
}

// Shared build loop. leafFn computes leaf digests, which lets a Tree memoize them. Returns the root and the total number of nodes allocated.
func buildNodes(data []int, fanout int, h digest.Hasher, leafFn func(int) digest.Digest) (*Node, int) {
	if len(data) == 0 {
		return nil, 0
	}
	if ValidateFanout(fanout) != nil {
		fanout = DefaultFanout
	}

	layer := make([]*Node, len(data))
	for i, v := range data {
		layer[i] = &Node{Digest: leafFn(v)}
	}
	count := len(layer)

	for len(layer) > 1 {
		parents := make([]*Node, 0, (len(layer)+fanout-1)/fanout)
		for i := 0; i < len(layer); i += fanout {
			end := min(i+fanout, len(layer))
			// copy, so that no two parents share a backing array with the layer slice
			children := make([]*Node, end-i)
			copy(children, layer[i:end])
			parents = append(parents, &Node{
				Digest:   concatChildren(h, children),
				Children: children,
			})
		}
		count += len(parents)
		layer = parents
	}
	return layer[0], count
}
