// Package broadcast serves a read-only, JSON-framed snapshot of a running
// engine over WebSocket: one frame pushed to every connected client after
// each tick. It is the wire-level half of the engine's rendering interface
// collaborator contract, not a front-end: no color mapping, no input, no
// layout, just the engine's own state serialized once per tick.
package broadcast

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ndyer/tetros/pkg/engine"
	"github.com/ndyer/tetros/pkg/field"
	"github.com/ndyer/tetros/pkg/statistics"

	"github.com/seekerror/logw"
)

// Snapshot is the per-tick JSON frame pushed to every connected client.
type Snapshot struct {
	Tick       uint64                `json:"tick"`
	Status     string                `json:"status"`
	Field      []string              `json:"field"`
	Block      *PieceView            `json:"block"`
	Ghost      *PieceView            `json:"ghost"`
	Hold       string                `json:"hold,omitempty"`
	Preview    []string              `json:"preview"`
	Statistics statistics.Statistics `json:"statistics"`
}

// PieceView is the wire representation of an active or ghost block.
type PieceView struct {
	Id       string `json:"id"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotation string `json:"rotation"`
}

// Snap renders e's current state into a Snapshot. It never mutates e.
func Snap(e *engine.Engine) Snapshot {
	f := e.Field()
	rows := make([]string, f.Height)
	for y := 0; y < f.Height; y++ {
		row := make([]byte, f.Width)
		for x := 0; x < f.Width; x++ {
			if id := f.Get(x, y); id != field.None {
				row[x] = id.String()[0]
			} else {
				row[x] = ' '
			}
		}
		rows[y] = string(row)
	}

	b := e.Block()

	s := Snapshot{
		Tick:       e.TickCount(),
		Status:     e.Status().String(),
		Field:      rows,
		Block:      pieceView(b),
		Ghost:      pieceView(e.Ghost()),
		Statistics: *e.Statistics(),
	}
	if id, ok := e.Hold(); ok {
		s.Hold = id.String()
	}

	// Seven ids: the default randomizer lookahead. Preview panics when asked
	// for more ids than the configured lookahead.
	ids := e.Preview(7)
	s.Preview = make([]string, len(ids))
	for i, id := range ids {
		s.Preview[i] = id.String()
	}

	return s
}

func pieceView(b *field.Block) *PieceView {
	if b == nil {
		return nil
	}
	return &PieceView{Id: b.Id.String(), X: b.X, Y: b.Y, Rotation: b.R.String()}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Snapshot feed is read-only output; accept any origin the way a local
	// dev tool would, rather than pretending to enforce browser security
	// policy it has no stake in.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server fans a snapshot out to every client connected since New, pushed
// once per call to Broadcast.
type Server struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New returns an empty Server.
func New() *Server {
	return &Server{clients: make(map[*websocket.Conn]struct{})}
}

// Handler upgrades incoming HTTP requests to WebSocket connections and
// registers them to receive future Broadcast calls. The feed is
// one-directional: anything a client sends is read and discarded by drain.
func (s *Server) Handler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logw.Warningf(ctx, "broadcast: upgrade failed: %v", err)
			return
		}

		s.mu.Lock()
		s.clients[conn] = struct{}{}
		s.mu.Unlock()

		logw.Infof(ctx, "broadcast: client connected (%v total)", s.count())

		go s.drain(ctx, conn)
	}
}

// drain discards any client-sent messages and deregisters the connection
// once it closes, since the feed itself carries no inbound protocol.
func (s *Server) drain(ctx context.Context, conn *websocket.Conn) {
	defer s.remove(ctx, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) remove(ctx context.Context, conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	n := len(s.clients)
	s.mu.Unlock()
	_ = conn.Close()
	logw.Infof(ctx, "broadcast: client disconnected (%v remaining)", n)
}

func (s *Server) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Broadcast serializes snap and writes it to every connected client,
// dropping (and deregistering) any connection that errors on write.
func (s *Server) Broadcast(ctx context.Context, snap Snapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		logw.Warningf(ctx, "broadcast: marshal failed: %v", err)
		return
	}

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.remove(ctx, c)
		}
	}
}
