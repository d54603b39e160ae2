package mtree

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/bluesky-social/merkletree/digest"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Textual stand-in for the root digest of a tree with no data.
const EmptyTreeIndicator = "Empty tree"

var ErrInvalidFanout = errors.New("fanout must be at least 2")

var ErrRootMismatch = errors.New("root digest does not match data")

var ErrInvalidStructure = errors.New("invalid tree structure")

// Tree holds an ordered data sequence and the node graph derived from it.
//
// The root is nil if and only if data is empty; otherwise it is always the result of Build over the current data.
type Tree struct {
	data   []int
	root   *Node
	fanout int
	hasher digest.Hasher
	logger *slog.Logger
	leaves *lru.Cache[int, digest.Digest]
}

type Config struct {
	// Maximum number of children per interior node
	Fanout int
	Hasher digest.Hasher
	Logger *slog.Logger
	// If positive, leaf digests are memoized in an LRU cache of this many values
	LeafCacheSize int
}

type Option func(*Config)

func DefaultConfig() Config {
	return Config{
		Fanout: DefaultFanout,
		Hasher: digest.Default(),
		Logger: slog.Default(),
	}
}

// Options converts a Config in to the equivalent list of Option, mostly useful for CLI wiring.
func (c Config) Options() []Option {
	opts := []Option{WithFanout(c.Fanout), WithLeafCache(c.LeafCacheSize)}
	if c.Hasher != nil {
		opts = append(opts, WithHasher(c.Hasher))
	}
	if c.Logger != nil {
		opts = append(opts, WithLogger(c.Logger))
	}
	return opts
}

func WithFanout(fanout int) Option {
	return func(c *Config) {
		c.Fanout = fanout
	}
}

func WithHasher(h digest.Hasher) Option {
	return func(c *Config) {
		c.Hasher = h
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func WithLeafCache(size int) Option {
	return func(c *Config) {
		c.LeafCacheSize = size
	}
}

func ValidateFanout(fanout int) error {
	if fanout < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidFanout, fanout)
	}
	return nil
}

// Creates a new empty tree.
func New(opts ...Option) *Tree {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Hasher == nil {
		cfg.Hasher = digest.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	logger := cfg.Logger.With("system", "mtree")
	if err := ValidateFanout(cfg.Fanout); err != nil {
		logger.Warn("ignoring invalid fanout", "fanout", cfg.Fanout, "default", DefaultFanout)
		cfg.Fanout = DefaultFanout
	}
	t := &Tree{
		fanout: cfg.Fanout,
		hasher: cfg.Hasher,
		logger: logger,
	}
	if cfg.LeafCacheSize > 0 {
		cache, err := lru.New[int, digest.Digest](cfg.LeafCacheSize)
		if err != nil {
			logger.Warn("leaf cache disabled", "err", err)
		} else {
			t.leaves = cache
		}
	}
	return t
}

// Creates a tree from an initial data sequence, and builds it immediately. The slice is copied.
func NewFromData(data []int, opts ...Option) *Tree {
	t := New(opts...)
	t.data = slices.Clone(data)
	t.rebuild()
	return t
}

// Returns the current root node, or nil if the tree is empty. The node graph must be treated as read-only.
func (t *Tree) Root() *Node {
	return t.root
}

// Returns the current root node as a stable snapshot. Later mutations of the tree allocate a new graph and never touch the snapshot, so it may be read while the tree changes.
func (t *Tree) Snapshot() *Node {
	return t.root
}

// Returns the root digest, or digest.Empty if the tree has no data.
func (t *Tree) RootDigest() digest.Digest {
	if t.root == nil {
		return digest.Empty
	}
	return t.root.Digest
}

// Like RootDigest, but renders an empty tree as EmptyTreeIndicator.
func (t *Tree) RootString() string {
	if t.root == nil {
		return EmptyTreeIndicator
	}
	return t.root.Digest.String()
}

// Returns a copy of the data sequence.
func (t *Tree) Data() []int {
	return slices.Clone(t.data)
}

func (t *Tree) Len() int {
	return len(t.data)
}

func (t *Tree) Fanout() int {
	return t.fanout
}

func (t *Tree) Hasher() digest.Hasher {
	return t.hasher
}

// Releases the whole node graph, leaving the root absent. Data is not changed.
func (t *Tree) Discard() {
	t.root = nil
}

// Appends a value to the end of the data and rebuilds the tree.
func (t *Tree) Insert(v int) {
	t.InsertMany(v)
}

// Appends all values, in order, then rebuilds the tree once.
func (t *Tree) InsertMany(vs ...int) {
	if len(vs) == 0 {
		return
	}
	t.data = append(t.data, vs...)
	t.rebuild()
}

// Replaces the first element equal to orig with repl, and rebuilds the tree.
//
// If orig is not in the data, nothing changes and false is returned. This is not an error.
func (t *Tree) Overwrite(orig, repl int) bool {
	idx := slices.Index(t.data, orig)
	if idx < 0 {
		t.logger.Debug("overwrite target not found", "value", orig)
		return false
	}
	t.data[idx] = repl
	t.rebuild()
	return true
}

// Builds a new node graph from the current data, then swaps it in for the old one.
func (t *Tree) rebuild() {
	start := time.Now()
	root, count := buildNodes(t.data, t.fanout, t.hasher, t.leafDigest)
	t.Discard()
	t.root = root

	rebuildCount.Inc()
	rebuildDuration.Observe(time.Since(start).Seconds())
	nodesBuilt.Add(float64(count))
	t.logger.Debug("rebuilt tree", "leaves", len(t.data), "nodes", count, "root", t.RootDigest(), "duration", time.Since(start))
}

func (t *Tree) leafDigest(v int) digest.Digest {
	if t.leaves == nil {
		return LeafDigest(t.hasher, v)
	}
	if d, ok := t.leaves.Get(v); ok {
		leafCacheHits.Inc()
		return d
	}
	d := LeafDigest(t.hasher, v)
	t.leaves.Add(v, d)
	return d
}
