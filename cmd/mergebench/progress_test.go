package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestProgressBroadcasterSendsRunCompletedMessage(t *testing.T) {
	pb := newProgressBroadcaster()
	srv := httptest.NewServer(http.HandlerFunc(pb.handleConn))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// give handleConn's registration a moment to land before broadcasting.
	deadline := time.Now().Add(time.Second)
	for {
		pb.mu.RLock()
		n := len(pb.clients)
		pb.mu.RUnlock()
		if n > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(time.Millisecond)
	}

	pb.runCompleted(1, 3, 42)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(msg), "run 1/3: merged 42 rows"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}
