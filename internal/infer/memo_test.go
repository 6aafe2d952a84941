package infer

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mica/internal/ir"
)

func TestMemoComputesEachKeyOnce(t *testing.T) {
	var calls int32
	memo := NewMemo(func(key string) (string, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(10 * time.Millisecond)
		return "result:" + key, nil
	})

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := memo.Get("k")
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, "result:k", v)
	}
	assert.Equal(t, 1, memo.Len())
}

func TestMemoDistinctKeys(t *testing.T) {
	var calls int32
	memo := NewMemo(func(key int) (int, error) {
		atomic.AddInt32(&calls, 1)
		return key * 2, nil
	})

	a, err := memo.Get(1)
	require.NoError(t, err)
	b, err := memo.Get(2)
	require.NoError(t, err)

	assert.Equal(t, 2, a)
	assert.Equal(t, 4, b)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 2, memo.Len())
}

func TestMemoCachesErrors(t *testing.T) {
	var calls int32
	boom := errors.New("boom")
	memo := NewMemo(func(key string) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 0, boom
	})

	_, err1 := memo.Get("k")
	_, err2 := memo.Get("k")

	assert.ErrorIs(t, err1, boom)
	assert.ErrorIs(t, err2, boom)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestErrorIncludesRefs(t *testing.T) {
	gen := ir.NewGenSym()
	x := gen.Sym("x")

	err := &Error{Message: "cannot unify", Refs: []ir.Node{x, &ir.Value{X: int64(1)}}}
	assert.Equal(t, "cannot unify: x, 1", err.Error())

	bare := &Error{Message: "cannot unify"}
	assert.Equal(t, "cannot unify", bare.Error())
}
