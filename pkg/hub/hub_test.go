package hub

import (
	"encoding/json"
	"sync"
	"testing"
	"time"
)

// waitFor polls cond until it returns true or the deadline passes
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestNew(t *testing.T) {
	h := New("test")

	if h == nil {
		t.Fatal("New returned nil")
	}
	if h.ClientCount() != 0 {
		t.Error("ClientCount should be 0 initially")
	}
	if h.IsRunning() {
		t.Error("IsRunning should be false before Run")
	}
}

func TestRegisterAndUnregister(t *testing.T) {
	h := New("test")
	go h.Run()

	waitFor(t, h.IsRunning, "hub did not start running")

	c := NewClient(h, nil)
	waitFor(t, func() bool { return h.ClientCount() == 1 }, "client was not registered")

	h.unregister <- c
	waitFor(t, func() bool { return h.ClientCount() == 0 }, "client was not unregistered")
}

func TestBroadcastJSON(t *testing.T) {
	h := New("test")
	go h.Run()

	c := NewClient(h, nil)
	waitFor(t, func() bool { return h.ClientCount() == 1 }, "client was not registered")

	if err := h.BroadcastJSON(map[string]string{"event": "ping"}); err != nil {
		t.Fatalf("BroadcastJSON error: %v", err)
	}

	select {
	case msg := <-c.send:
		var payload map[string]string
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			t.Fatalf("delivered message is not valid JSON: %v", err)
		}
		if payload["event"] != "ping" {
			t.Errorf("event = %q, want ping", payload["event"])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered to client")
	}
}

func TestBroadcastJSON_InvalidValue(t *testing.T) {
	h := New("test")

	if err := h.BroadcastJSON(make(chan int)); err == nil {
		t.Error("BroadcastJSON should fail for unmarshalable values")
	}
}

func TestSlowClientIsDropped(t *testing.T) {
	h := New("test")
	go h.Run()

	// The client never drains its send buffer
	c := NewClient(h, nil)
	waitFor(t, func() bool { return h.ClientCount() == 1 }, "client was not registered")

	// Hammer the read-side accessors while the hub fans out, so the
	// race detector sees concurrent reads against the drop path
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				_ = h.ClientCount()
				_ = h.IsRunning()
			}
		}
	}()

	// Overflow the client's send buffer to trigger the drop
	payload := NewJSONMessage([]byte(`{}`))
	for i := 0; i < 4*cap(c.send); i++ {
		h.Broadcast(payload)
	}

	waitFor(t, func() bool { return h.ClientCount() == 0 }, "slow client was not dropped")
	close(done)
	wg.Wait()

	// The hub closes the channel when it drops the client
	waitFor(t, func() bool {
		for {
			select {
			case _, ok := <-c.send:
				if !ok {
					return true
				}
			default:
				return false
			}
		}
	}, "send channel was not closed")
}
