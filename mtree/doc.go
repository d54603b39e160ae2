/*
Implementation of a fixed fan-out Merkle hash tree over an ordered sequence of integers.

## Terminology

leaf: a node with no children. there is exactly one leaf per data element, in data order, and its digest is the hash of the decimal text of the value

node: any vertex in the tree. interior nodes own between 1 and `fanout` children, and their digest is the hash of the concatenation of the child digests, left to right

layer: all nodes at the same height. leaves are layer zero; each layer above is formed by grouping consecutive nodes of the layer below into groups of `fanout`. the last group in a layer may be short, and is never padded

root: the single node on the top layer. a single-element tree is just one leaf, which is also the root. an empty tree has no root at all

## Mutation

Every structural change (Insert, Overwrite) discards the whole node graph and rebuilds from the full data sequence. There is no incremental re-hashing. A rebuild allocates an entirely new graph and only swaps it in once it is complete; old nodes are never mutated, so a caller holding a Snapshot keeps a consistent view of the old tree.

## Verification

Verify re-derives the root from the data and compares it against the held root. Through the public operations the two can never diverge, so on an untouched tree this is a self-check. VerifyRoot and CheckRoot compare a fresh build against an externally supplied root digest, which is the useful form for confirming that data matches a previously published root.

## Concurrency

A Tree is not safe for concurrent mutation; callers must serialize Insert, Overwrite and Verify themselves.
*/
package mtree
