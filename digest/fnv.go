package digest

import (
	"strconv"
)

const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

// FNV1a is the 64-bit FNV-1a hash, with the result encoded as a decimal string.
type FNV1a struct{}

func (FNV1a) Name() string {
	return "fnv1a"
}

func (FNV1a) Sum(data []byte) Digest {
	return Digest(strconv.FormatUint(Sum64(data), 10))
}

// Sum64 returns the raw 64-bit FNV-1a value of data. The value for empty input is the offset basis.
func Sum64(data []byte) uint64 {
	h := fnvOffsetBasis
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime
	}
	return h
}
