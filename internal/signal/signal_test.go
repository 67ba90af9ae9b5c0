package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kharcha/internal/signal"
)

func TestBroadcaster_PublishReachesAllSubscribers(t *testing.T) {
	b := signal.New[int]()

	var got1, got2 []int

	b.Subscribe(func(v int) { got1 = append(got1, v) })
	b.Subscribe(func(v int) { got2 = append(got2, v) })

	b.Publish(1)
	b.Publish(2)

	assert.Equal(t, []int{1, 2}, got1)
	assert.Equal(t, []int{1, 2}, got2)
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := signal.New[string]()

	var got []string

	unsub := b.Subscribe(func(v string) { got = append(got, v) })

	b.Publish("before")
	unsub()
	b.Publish("after")

	assert.Equal(t, []string{"before"}, got)
}

func TestBroadcaster_UnsubscribeIsIdempotent(t *testing.T) {
	b := signal.New[struct{}]()

	calls := 0
	keep := b.Subscribe(func(struct{}) { calls++ })

	unsub := b.Subscribe(func(struct{}) { t.Fatal("should not fire") })
	unsub()
	unsub()

	b.Publish(struct{}{})

	assert.Equal(t, 1, calls)
	_ = keep
}

func TestBroadcaster_PublishWithoutSubscribers(t *testing.T) {
	b := signal.New[int]()

	assert.NotPanics(t, func() { b.Publish(42) })
}
