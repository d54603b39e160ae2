/*
Package digest defines the hashing capability used by the Merkle tree engine.

A Hasher maps an arbitrary byte sequence to a Digest. Digests are opaque strings which are only ever compared for equality, or concatenated and hashed again to produce parent digests.

The default hasher is 64-bit FNV-1a, rendered as a decimal string. It is fast but not collision resistant, and it is not suitable where an adversary controls the input. The other registered hashers (sha256, blake3, multihash, cid) can be swapped in without any change to tree logic.
*/
package digest
