package diag

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := NewCounter()

	snap := c.Snapshot()
	assert.Len(t, snap, len(Kinds()))
	for _, k := range Kinds() {
		assert.Zero(t, snap[k])
	}

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			c.Emit(Event{Kind: KindUnknownMetric})
		})
	}
	wg.Wait()
	c.Emit(Event{Kind: KindUnknownUnit})

	assert.Equal(t, uint64(20), c.Get(KindUnknownMetric))
	assert.Equal(t, uint64(1), c.Get(KindUnknownUnit))
	assert.Zero(t, c.Get(KindDuplicateMetric))
}

func TestCounterSnapshotIsACopy(t *testing.T) {
	c := NewCounter()
	snap := c.Snapshot()
	snap[KindUnknownMetric] = 99

	assert.Zero(t, c.Get(KindUnknownMetric))
}
