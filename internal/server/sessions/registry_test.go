package sessions

import (
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reymom/zkp-chaum-pedersen/internal/common"
)

func TestRegistry_SaveAndGet(t *testing.T) {
	r := NewRegistry()

	r.Save(&UserRecord{Name: "alice", Y1: big.NewInt(2), Y2: big.NewInt(3)})

	rec, err := r.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.Name)
	assert.Equal(t, big.NewInt(2), rec.Y1)
	assert.Equal(t, big.NewInt(3), rec.Y2)
	assert.Nil(t, rec.C, "no challenge attached yet")
}

func TestRegistry_Get_NotFound(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRegistry_Save_OverwritesRegistration(t *testing.T) {
	r := NewRegistry()

	r.Save(&UserRecord{Name: "alice", Y1: big.NewInt(2), Y2: big.NewInt(3)})
	r.Save(&UserRecord{Name: "alice", Y1: big.NewInt(5), Y2: big.NewInt(7)})

	rec, err := r.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(5), rec.Y1)
	assert.Equal(t, big.NewInt(7), rec.Y2)
}

func TestRegistry_AttachChallenge_ReplacesPrevious(t *testing.T) {
	r := NewRegistry()
	r.Save(&UserRecord{Name: "alice", Y1: big.NewInt(2), Y2: big.NewInt(3)})

	require.NoError(t, r.AttachChallenge("alice", big.NewInt(8), big.NewInt(4), big.NewInt(6)))
	require.NoError(t, r.AttachChallenge("alice", big.NewInt(1), big.NewInt(9), big.NewInt(10)))

	rec, err := r.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), rec.R1)
	assert.Equal(t, big.NewInt(9), rec.R2)
	assert.Equal(t, big.NewInt(10), rec.C)
}

func TestRegistry_AttachChallenge_NotFound(t *testing.T) {
	r := NewRegistry()

	err := r.AttachChallenge("ghost", big.NewInt(1), big.NewInt(2), big.NewInt(3))
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("user-%d", i%10)
			r.Save(&UserRecord{Name: name, Y1: big.NewInt(int64(i)), Y2: big.NewInt(int64(i))})
			_ = r.AttachChallenge(name, big.NewInt(1), big.NewInt(2), big.NewInt(3))
			_, _ = r.Get(name)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		_, err := r.Get(fmt.Sprintf("user-%d", i))
		assert.NoError(t, err)
	}
}

func TestAuthIndex_PutIfAbsentAndResolve(t *testing.T) {
	i := NewAuthIndex()

	require.True(t, i.PutIfAbsent("tok1", "alice"))
	assert.False(t, i.PutIfAbsent("tok1", "bob"), "collision must be rejected")

	name, err := i.Resolve("tok1")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestAuthIndex_Resolve_NotFound(t *testing.T) {
	i := NewAuthIndex()

	_, err := i.Resolve("unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAuthIndex_ConcurrentMint(t *testing.T) {
	i := NewAuthIndex()

	var wg sync.WaitGroup
	inserted := make([]bool, 100)
	for n := 0; n < 100; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			inserted[n] = i.PutIfAbsent(fmt.Sprintf("tok-%d", n%50), "user")
		}(n)
	}
	wg.Wait()

	wins := 0
	for _, ok := range inserted {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 50, wins, "each distinct token must be inserted exactly once")
}
