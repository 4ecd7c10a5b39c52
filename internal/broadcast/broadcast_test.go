package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster(t *testing.T) {
	t.Run("delivers to all subscribers in publish order", func(t *testing.T) {
		// given
		sut := New[int](10)
		ch1, unsub1 := sut.Subscribe()
		defer unsub1()
		ch2, unsub2 := sut.Subscribe()
		defer unsub2()

		// when
		for i := 0; i < 3; i++ {
			sut.Publish(context.Background(), i)
		}

		// then
		for i := 0; i < 3; i++ {
			assert.Equal(t, i, <-ch1)
			assert.Equal(t, i, <-ch2)
		}
		assert.Equal(t, 2, sut.Len())
	})

	t.Run("unsubscribed subscriber does not block publishing", func(t *testing.T) {
		// given
		sut := New[int](1)
		_, unsub := sut.Subscribe()
		sut.Publish(context.Background(), 1)

		done := make(chan struct{})
		go func() {
			sut.Publish(context.Background(), 2)
			close(done)
		}()

		// when
		time.Sleep(20 * time.Millisecond)
		unsub()

		// then
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("publish still blocked")
		}
		assert.Equal(t, 0, sut.Len())
	})

	t.Run("cancelled context stops publishing", func(t *testing.T) {
		sut := New[int](1)
		_, unsub := sut.Subscribe()
		defer unsub()
		sut.Publish(context.Background(), 1)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		sut.Publish(ctx, 2)
	})

	t.Run("close closes subscriber channels", func(t *testing.T) {
		sut := New[string](0)
		ch, _ := sut.Subscribe()

		sut.Close()
		sut.Close()
		sut.Publish(context.Background(), "ignored")

		_, ok := <-ch
		require.False(t, ok)

		late, _ := sut.Subscribe()
		_, ok = <-late
		require.False(t, ok)
	})
}
