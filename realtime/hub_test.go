package realtime

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func TestHub_BroadcastToRoom(t *testing.T) {
	hub, _ := startHub(t)

	alice := NewClient(hub, nil, "alice")
	bob := NewClient(hub, nil, "bob")
	hub.Register <- alice
	hub.Register <- bob

	require.Eventually(t, func() bool { return len(hub.Rooms()) == 2 }, time.Second, 10*time.Millisecond)

	hub.BroadcastToRoom("alice", Message{Type: "notifications", Payload: []string{"hi"}})

	select {
	case data := <-alice.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "notifications", msg.Type)
	case <-time.After(time.Second):
		t.Fatal("alice did not receive the message")
	}
	assert.Empty(t, bob.Send)
}

func TestHub_UnregisterClosesRoom(t *testing.T) {
	hub, _ := startHub(t)

	c := NewClient(hub, nil, "carol")
	hub.Register <- c
	require.Eventually(t, func() bool { return len(hub.Rooms()) == 1 }, time.Second, 10*time.Millisecond)

	hub.Unregister <- c
	require.Eventually(t, func() bool { return len(hub.Rooms()) == 0 }, time.Second, 10*time.Millisecond)

	_, ok := <-c.Send
	assert.False(t, ok, "send channel must be closed")

	// повторная отписка не паникует
	hub.Unregister <- c
}

func TestHub_StopClosesClients(t *testing.T) {
	hub, cancel := startHub(t)

	c := NewClient(hub, nil, "dave")
	hub.Register <- c
	require.Eventually(t, func() bool { return len(hub.Rooms()) == 1 }, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case _, ok := <-c.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("client was not closed on hub stop")
	}
}

func TestHub_FullBufferSkips(t *testing.T) {
	hub, _ := startHub(t)

	c := NewClient(hub, nil, "erin")
	hub.Register <- c
	require.Eventually(t, func() bool { return len(hub.Rooms()) == 1 }, time.Second, 10*time.Millisecond)

	for i := 0; i < sendBuffer+5; i++ {
		hub.BroadcastToRoom("erin", Message{Type: "tick"})
	}
	assert.Len(t, c.Send, sendBuffer)
}

func TestHub_LeaveAfterStop(t *testing.T) {
	hub, cancel := startHub(t)
	cancel()

	done := make(chan struct{})
	go func() {
		hub.Leave(NewClient(hub, nil, "frank"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Leave blocked after hub stop")
	}
}

func TestHub_JoinAfterStop(t *testing.T) {
	hub, cancel := startHub(t)

	c := NewClient(hub, nil, "gina")
	require.True(t, hub.Join(c))
	require.Eventually(t, func() bool { return len(hub.Rooms()) == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	<-hub.done
	assert.False(t, hub.Join(NewClient(hub, nil, "hank")))
}

func TestClient_Queue(t *testing.T) {
	c := NewClient(nil, nil, "ivan")

	require.NoError(t, c.Queue(Message{Type: "notifications", Payload: []string{}}))
	var msg Message
	require.NoError(t, json.Unmarshal(<-c.Send, &msg))
	assert.Equal(t, "notifications", msg.Type)

	for i := 0; i < sendBuffer; i++ {
		require.NoError(t, c.Queue(Message{Type: "tick"}))
	}
	assert.Error(t, c.Queue(Message{Type: "tick"}))
	assert.Error(t, c.Queue(func() {}))
}
