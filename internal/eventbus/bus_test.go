package eventbus

// ============================================================================
// Event Bus Test File
// Purpose: Verify per-worker filtering, fan-out, unsubscribe semantics
// ============================================================================

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/davidmrdavid/azure-functions-host/api/proto/v1"
)

func startStreamMsg(id string) *pb.StreamingMessage {
	return &pb.StreamingMessage{
		Content: &pb.StreamingMessage_StartStream{
			StartStream: &pb.StartStream{WorkerId: id},
		},
	}
}

// TestPublishSubscribe tests basic delivery to a single subscriber
func TestPublishSubscribe(t *testing.T) {
	bus := New(8)
	sub := bus.Subscribe("w1", Inbound)
	defer sub.Close()

	bus.Publish("w1", Inbound, startStreamMsg("w1"))

	select {
	case msg := <-sub.C:
		require.NotNil(t, msg.GetStartStream())
		assert.Equal(t, "w1", msg.GetStartStream().GetWorkerId())
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

// TestWorkerIDFiltering tests that subscribers only see their worker's slice
func TestWorkerIDFiltering(t *testing.T) {
	bus := New(8)
	sub1 := bus.Subscribe("w1", Inbound)
	sub2 := bus.Subscribe("w2", Inbound)
	defer sub1.Close()
	defer sub2.Close()

	bus.Publish("w2", Inbound, startStreamMsg("w2"))

	select {
	case <-sub1.C:
		t.Fatal("w1 subscriber received w2 message")
	case msg := <-sub2.C:
		assert.Equal(t, "w2", msg.GetStartStream().GetWorkerId())
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

// TestDirectionFiltering tests inbound/outbound isolation
func TestDirectionFiltering(t *testing.T) {
	bus := New(8)
	in := bus.Subscribe("w1", Inbound)
	out := bus.Subscribe("w1", Outbound)
	defer in.Close()
	defer out.Close()

	bus.Publish("w1", Outbound, startStreamMsg("w1"))

	select {
	case <-in.C:
		t.Fatal("inbound subscriber received outbound message")
	case <-out.C:
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

// TestFanOut tests delivery to multiple subscribers of the same topic
func TestFanOut(t *testing.T) {
	bus := New(8)
	subs := make([]*Subscription, 3)
	for i := range subs {
		subs[i] = bus.Subscribe("w1", Inbound)
		defer subs[i].Close()
	}

	bus.Publish("w1", Inbound, startStreamMsg("w1"))

	for i, sub := range subs {
		select {
		case <-sub.C:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d missed message", i)
		}
	}
}

// TestCloseRemovesSubscription tests that Close releases the bus reference
func TestCloseRemovesSubscription(t *testing.T) {
	bus := New(8)
	sub := bus.Subscribe("w1", Inbound)
	require.Equal(t, 1, bus.SubscriberCount("w1", Inbound))

	sub.Close()
	assert.Equal(t, 0, bus.SubscriberCount("w1", Inbound))

	// Publishing after close must not panic or deliver
	bus.Publish("w1", Inbound, startStreamMsg("w1"))
	select {
	case _, ok := <-sub.C:
		if ok {
			t.Fatal("closed subscription received message")
		}
	default:
	}
}

// TestCloseIdempotent tests double close
func TestCloseIdempotent(t *testing.T) {
	bus := New(8)
	sub := bus.Subscribe("w1", Inbound)

	assert.NotPanics(t, func() {
		sub.Close()
		sub.Close()
	})
}

// TestOverflowDoesNotBlock tests that a stalled subscriber never blocks Publish
func TestOverflowDoesNotBlock(t *testing.T) {
	bus := New(2)
	sub := bus.Subscribe("w1", Inbound)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			bus.Publish("w1", Inbound, startStreamMsg(fmt.Sprintf("m-%d", i)))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on full subscriber")
	}
}

// TestConcurrentPublish tests many publishers against one consumer
func TestConcurrentPublish(t *testing.T) {
	bus := New(DefaultBufferSize)
	sub := bus.Subscribe("w1", Inbound)
	defer sub.Close()

	const n = 100
	for i := 0; i < n; i++ {
		go bus.Publish("w1", Inbound, startStreamMsg("w1"))
	}

	received := 0
	timeout := time.After(2 * time.Second)
	for received < n {
		select {
		case <-sub.C:
			received++
		case <-timeout:
			t.Fatalf("received %d of %d messages", received, n)
		}
	}
}
