package dialog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	_, ok := store.Get(1)
	assert.False(t, ok)

	store.Put(NewSession(1))
	sess, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, int64(1), sess.ActorID)
	assert.Equal(t, StepName, sess.Step)
	assert.Equal(t, 1, store.Len())

	store.Delete(1)
	_, ok = store.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStoreOneSessionPerActor(t *testing.T) {
	store := NewStore()

	first := NewSession(1)
	store.Put(first)

	second := NewSession(1)
	second.Step = StepServer
	store.Put(second)

	sess, ok := store.Get(1)
	require.True(t, ok)
	assert.Same(t, second, sess)
	assert.Equal(t, 1, store.Len())
}

func TestStoreConcurrentActors(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(actorID int64) {
			defer wg.Done()

			store.Put(NewSession(actorID))

			sess, ok := store.Get(actorID)
			assert.True(t, ok)
			assert.Equal(t, actorID, sess.ActorID)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
