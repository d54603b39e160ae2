package digest

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Digest is the hash value of a leaf or interior tree node.
//
// The zero value (Empty) is never returned by a Hasher, and is used to represent the root of an empty tree.
type Digest string

const Empty Digest = ""

var ErrUnknownHasher = errors.New("unknown hash function")

// Hasher is anything which can hash a byte sequence to a comparable Digest.
//
// Implementations must be pure: the same input always yields the same Digest, with no hidden state between calls.
type Hasher interface {
	Sum(data []byte) Digest
	Name() string
}

func (d Digest) String() string {
	return string(d)
}

func (d Digest) IsEmpty() bool {
	return d == Empty
}

// Short returns an abbreviated form of the digest for display, keeping the last n characters.
func (d Digest) Short(n int) string {
	if n <= 0 || len(d) <= n {
		return string(d)
	}
	return "…" + string(d[len(d)-n:])
}

// Concat hashes the concatenation of the given digests, in order.
func Concat(h Hasher, parts ...Digest) Digest {
	size := 0
	for _, p := range parts {
		size += len(p)
	}
	var sb strings.Builder
	sb.Grow(size)
	for _, p := range parts {
		sb.WriteString(string(p))
	}
	return h.Sum([]byte(sb.String()))
}

var registry = map[string]Hasher{}

func register(h Hasher) {
	registry[h.Name()] = h
}

func init() {
	register(FNV1a{})
	register(SHA256{})
	register(Blake3{})
	register(Murmur3{})
	register(XXHash{})
	register(Multihash{})
	register(CID{})
}

// Default returns the reference hasher (FNV-1a).
func Default() Hasher {
	return FNV1a{}
}

// ByName looks up a registered hasher. Names are case-insensitive.
func ByName(name string) (Hasher, error) {
	h, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
	return h, nil
}

// Names returns the names of all registered hashers, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
