package service

import (
	"context"
	"sync"
	"time"

	dErrors "billsplit/pkg/domain-errors"
)

// Stores is the set of stores a resolution writes through. Inside RunInTx the
// stores must be used with the context passed to fn.
type Stores struct {
	Users   UserStore
	Ledger  LedgerStore
	History HistoryStore
	Reports ReportStore
}

// DisputeStoreTx provides the transactional boundary for resolving a dispute.
// Implementations may wrap a database transaction or, in-memory, a lock keyed
// by the report.
type DisputeStoreTx interface {
	RunInTx(ctx context.Context, key string, fn func(ctx context.Context, stores Stores) error) error
}

// numDisputeShards spreads report keys across independent locks so unrelated
// disputes do not contend.
const numDisputeShards = 128

// defaultDisputeTxTimeout is the maximum duration for a dispute transaction
// when the caller set no deadline.
const defaultDisputeTxTimeout = 5 * time.Second

// shardedDisputeTx serializes transactions that share a key. It gives
// isolation between resolutions of the same report but cannot undo writes
// that succeeded before a later one failed.
type shardedDisputeTx struct {
	shards  [numDisputeShards]sync.Mutex
	stores  Stores
	timeout time.Duration
}

// NewShardedTx returns an in-process DisputeStoreTx over stores. A zero
// timeout uses the default.
func NewShardedTx(stores Stores, timeout time.Duration) DisputeStoreTx {
	return &shardedDisputeTx{stores: stores, timeout: timeout}
}

func (t *shardedDisputeTx) RunInTx(ctx context.Context, key string, fn func(ctx context.Context, stores Stores) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultDisputeTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	shard := hashKey(key) % numDisputeShards
	t.shards[shard].Lock()
	defer t.shards[shard].Unlock()

	// Check again after acquiring lock
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	return fn(ctx, t.stores)
}

// hashKey is 32-bit FNV-1a.
func hashKey(s string) uint32 {
	const (
		fnvOffset = 2166136261
		fnvPrime  = 16777619
	)
	h := uint32(fnvOffset)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime
	}
	return h
}
