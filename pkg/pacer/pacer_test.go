package pacer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEach(t *testing.T) {
	t.Run("visits every item in order", func(t *testing.T) {
		var visited []string
		err := Each(context.Background(), []string{"a", "b", "c"}, 0, func(_ context.Context, _ int, item string) error {
			visited = append(visited, item)
			return nil
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, visited)
	})

	t.Run("item errors do not stop iteration", func(t *testing.T) {
		var visited int
		var failed []int
		err := Each(context.Background(), []int{1, 2, 3}, 0, func(_ context.Context, i int, _ int) error {
			visited++
			if i == 1 {
				return errors.New("boom")
			}
			return nil
		}, func(i int, _ error) {
			failed = append(failed, i)
		})
		require.NoError(t, err)
		assert.Equal(t, 3, visited)
		assert.Equal(t, []int{1}, failed)
	})

	t.Run("no delay after last item", func(t *testing.T) {
		start := time.Now()
		err := Each(context.Background(), []int{1}, time.Second, func(context.Context, int, int) error {
			return nil
		}, nil)
		require.NoError(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("delays between items", func(t *testing.T) {
		start := time.Now()
		err := Each(context.Background(), []int{1, 2, 3}, 10*time.Millisecond, func(context.Context, int, int) error {
			return nil
		}, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled context stops iteration", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		var visited int
		err := Each(ctx, []int{1, 2, 3}, time.Minute, func(context.Context, int, int) error {
			visited++
			cancel()
			return nil
		}, nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, visited)
	})

	t.Run("empty items", func(t *testing.T) {
		err := Each(context.Background(), nil, time.Minute, func(context.Context, int, struct{}) error {
			t.Fatal("should not be called")
			return nil
		}, nil)
		assert.NoError(t, err)
	})
}
