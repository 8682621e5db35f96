package ftsengine

import (
	"math/rand"
	"sort"
	"sync"
)

// ═══════════════════════════════════════════════════════════════════════════════
// CONCURRENT SHARDED MAP (§4.2)
// ═══════════════════════════════════════════════════════════════════════════════
// Parallel top-k search accumulates a relevance score per candidate
// document id from many goroutines at once (the plus-terms are spread over
// a worker pool). A single mutex around one ordered map would serialize
// every accumulate; this structure instead routes each id to one of
// shardCount independent shards (id mod shardCount, unsigned remainder so
// negative ids — which
// never occur here, ids are validated non-negative — can't wrap), each
// guarded by its own lock, the way torua's Shard routes keys by a
// consistent hash to avoid a single global lock (internal/shard/shard.go:
// "Sharding strategy: Keys are mapped to shards... ensuring even
// distribution").
//
// Accumulate operations are linearizable per shard. BuildOrderedSnapshot acquires
// every shard's lock, in shard-index order, merges their ordered entries,
// and releases — this is a lock set that excludes all writers for the
// duration of the merge, per §4.2's contract; it provides no cross-shard
// ordering guarantee beyond each shard's own serial history, which is fine
// since addition is associative (§5).
// ═══════════════════════════════════════════════════════════════════════════════

type scoreShard struct {
	mu     sync.Mutex
	values *orderedScoreMap
}

// ShardedScoreMap is a concurrent int -> float64 accumulator with
// shardCount independent shards.
type ShardedScoreMap struct {
	shards [shardCount]*scoreShard
}

const shardCount = 100 // BUCKETS_COUNT

// NewShardedScoreMap returns an empty accumulator ready for concurrent use.
func NewShardedScoreMap() *ShardedScoreMap {
	m := &ShardedScoreMap{}
	for i := range m.shards {
		// Each shard gets its own rand source: sharing one *rand.Rand
		// across goroutines would need its own lock, defeating the
		// point of sharding.
		m.shards[i] = &scoreShard{values: newOrderedScoreMap(rand.New(rand.NewSource(int64(i) + 1)))}
	}
	return m
}

func (m *ShardedScoreMap) shardFor(id int) *scoreShard {
	return m.shards[uint(id)%shardCount]
}

// Accumulate adds delta to the running score for id. Safe to call from many
// goroutines concurrently, including for the same id.
func (m *ShardedScoreMap) Accumulate(id int, delta float64) {
	shard := m.shardFor(id)
	shard.mu.Lock()
	shard.values.Accumulate(id, delta)
	shard.mu.Unlock()
}

// BuildOrderedSnapshot locks every shard in order, merges their contents,
// and returns the result as a single slice ordered ascending by id.
func (m *ShardedScoreMap) BuildOrderedSnapshot() []scoreEntry {
	for _, shard := range m.shards {
		shard.mu.Lock()
	}
	defer func() {
		for _, shard := range m.shards {
			shard.mu.Unlock()
		}
	}()

	merged := make([]scoreEntry, 0)
	for _, shard := range m.shards {
		merged = append(merged, shard.values.Entries()...)
	}
	sortScoreEntries(merged)
	return merged
}

func sortScoreEntries(entries []scoreEntry) {
	// Each shard already yields its own entries sorted ascending, and an
	// id belongs to exactly one shard, so a single final sort over the
	// concatenation is enough to recover global ascending order.
	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })
}
