package guard

import (
	"context"
	"sync"
	"time"

	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/sentinel"
)

// MemoryGuard is an in-process lease table with the same semantics as
// RedisGuard.
type MemoryGuard struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	seq    uint64
	leases map[id.ReportID]lease
}

type lease struct {
	token     uint64
	expiresAt time.Time
}

func NewMemory(ttl time.Duration) *MemoryGuard {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryGuard{
		ttl:    ttl,
		now:    time.Now,
		leases: make(map[id.ReportID]lease),
	}
}

func (g *MemoryGuard) Acquire(_ context.Context, reportID id.ReportID) (func(context.Context), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if l, ok := g.leases[reportID]; ok && now.Before(l.expiresAt) {
		return nil, sentinel.ErrAlreadyUsed
	}
	g.seq++
	token := g.seq
	g.leases[reportID] = lease{token: token, expiresAt: now.Add(g.ttl)}

	return func(context.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if l, ok := g.leases[reportID]; ok && l.token == token {
			delete(g.leases, reportID)
		}
	}, nil
}
