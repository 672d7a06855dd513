package diag

import "sync"

// Kinds lists every event kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindUnknownUnit,
		KindUnitOverride,
		KindUnknownMetric,
		KindDuplicateMetric,
		KindReservedMetric,
	}
}

// Counter tallies events per kind.
type Counter struct {
	mu     sync.RWMutex
	counts map[Kind]uint64
}

// NewCounter creates a counter with every known kind at zero.
func NewCounter() *Counter {
	counts := make(map[Kind]uint64)
	for _, k := range Kinds() {
		counts[k] = 0
	}
	return &Counter{counts: counts}
}

// Emit increments the count of ev.Kind.
func (c *Counter) Emit(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[ev.Kind]++
}

// Get returns the count for kind.
func (c *Counter) Get(kind Kind) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[kind]
}

// Snapshot returns a copy of all counts.
func (c *Counter) Snapshot() map[Kind]uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[Kind]uint64, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
