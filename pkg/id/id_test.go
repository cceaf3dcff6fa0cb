package id

import (
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	got := New(Project)
	require.True(t, strings.HasPrefix(got, "prj_"))
	// prefix + separator + 26 char ULID
	assert.Len(t, got, len(Project)+1+26)
}

func TestNewIsMonotonic(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = New(Transaction)
	}
	assert.True(t, sort.StringsAreSorted(ids))

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestNewConcurrent(t *testing.T) {
	const workers, perWorker = 8, 50

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, perWorker)
			for i := range local {
				local[i] = New(User)
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				seen[id] = true
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
