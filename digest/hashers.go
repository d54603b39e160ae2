package digest

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/ipfs/go-cid"
	"github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multihash"
	"github.com/spaolacci/murmur3"
	"lukechampine.com/blake3"
)

// SHA256 is hex-encoded SHA-256.
type SHA256 struct{}

func (SHA256) Name() string { return "sha256" }

func (SHA256) Sum(data []byte) Digest {
	sum := sha256.Sum256(data)
	return Digest(hex.EncodeToString(sum[:]))
}

// Blake3 is hex-encoded 256-bit BLAKE3.
type Blake3 struct{}

func (Blake3) Name() string { return "blake3" }

func (Blake3) Sum(data []byte) Digest {
	sum := blake3.Sum256(data)
	return Digest(hex.EncodeToString(sum[:]))
}

// Murmur3 is the 64-bit murmur3 hash (first half of the x64 128-bit variant), decimal encoded.
type Murmur3 struct{}

func (Murmur3) Name() string { return "murmur3" }

func (Murmur3) Sum(data []byte) Digest {
	return Digest(strconv.FormatUint(murmur3.Sum64(data), 10))
}

// XXHash is xxHash64, decimal encoded.
type XXHash struct{}

func (XXHash) Name() string { return "xxhash" }

func (XXHash) Sum(data []byte) Digest {
	return Digest(strconv.FormatUint(xxhash.Sum64(data), 10))
}

// Multihash is a sha2-256 multihash, base58 encoded (the familiar "Qm..." form).
type Multihash struct{}

func (Multihash) Name() string { return "multihash" }

func (Multihash) Sum(data []byte) Digest {
	return Digest(base58.Encode(sha256Multihash(data)))
}

// CID is a CIDv1 with the raw codec over a sha2-256 multihash, in the default base32 string form.
type CID struct{}

func (CID) Name() string { return "cid" }

func (CID) Sum(data []byte) Digest {
	c := cid.NewCidV1(cid.Raw, sha256Multihash(data))
	return Digest(c.String())
}

func sha256Multihash(data []byte) multihash.Multihash {
	sum := sha256.Sum256(data)
	mh, err := multihash.Encode(sum[:], multihash.SHA2_256)
	if err != nil {
		// SHA2_256 is always a known code with a 32 byte digest
		panic(fmt.Sprintf("encoding sha2-256 multihash: %v", err))
	}
	return multihash.Multihash(mh)
}
