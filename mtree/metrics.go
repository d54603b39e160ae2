package mtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rebuildCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "mtree_rebuilds_total",
	Help: "Number of full tree rebuilds",
})

var rebuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "mtree_rebuild_duration_seconds",
	Help:    "Time to rebuild the full node graph",
	Buckets: prometheus.ExponentialBucketsRange(0.00001, 2, 20),
})

var nodesBuilt = promauto.NewCounter(prometheus.CounterOpts{
	Name: "mtree_nodes_built_total",
	Help: "Number of tree nodes allocated by rebuilds",
})

var leafCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "mtree_leaf_cache_hits_total",
	Help: "Leaf digests served from the LRU cache",
})

var verifyCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mtree_verify_total",
	Help: "Root verifications, by result",
}, []string{"result"})

func observeVerify(ok bool) {
	if ok {
		verifyCount.WithLabelValues("match").Inc()
	} else {
		verifyCount.WithLabelValues("mismatch").Inc()
	}
}
