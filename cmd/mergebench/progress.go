package main

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// progressBroadcaster serves a websocket endpoint and fans out one text
// message per completed benchmark run to every connected client, the
// same connection-map-plus-mutex-plus-WriteMessage(TextMessage, ...)
// shape as the teacher's WebSocketServer/WebSocketBroadcast in
// internal/network/websocket_server.go.
type progressBroadcaster struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
}

func newProgressBroadcaster() *progressBroadcaster {
	return &progressBroadcaster{
		clients: make(map[*websocket.Conn]bool),
	}
}

func (p *progressBroadcaster) serve(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/progress", p.handleConn)
	return http.ListenAndServe(addr, mux)
}

func (p *progressBroadcaster) handleConn(w http.ResponseWriter, r *http.Request) {
	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("mergebench: websocket upgrade failed: %v", err)
		return
	}
	p.mu.Lock()
	p.clients[conn] = true
	p.mu.Unlock()
}

// broadcast sends msg to every connected client, dropping any that error.
func (p *progressBroadcaster) broadcast(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for conn := range p.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			conn.Close()
			delete(p.clients, conn)
		}
	}
}

func (p *progressBroadcaster) runCompleted(run, totalRuns, mergedRows int) {
	p.broadcast(fmt.Sprintf("run %d/%d: merged %d rows", run, totalRuns, mergedRows))
}
