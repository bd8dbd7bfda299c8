// Package server streams rendered frames to browsers over a websocket and
// accepts parameter and camera updates from them.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"nimbus/internal/camera"
	"nimbus/internal/frame"
	"nimbus/internal/render"
	"nimbus/internal/views"
)

// DefaultFPS is the broadcast rate when none is given.
const DefaultFPS = 10

const (
	writeWait      = 2 * time.Second
	maxMessageSize = 1 << 16
)

// Message is a text command from a client. Any combination of fields may
// be present; they apply in field order.
type Message struct {
	Params json.RawMessage `json:"params,omitempty"`
	Look   *Look           `json:"look,omitempty"`
	Move   *Move           `json:"move,omitempty"`
	Pause  *bool           `json:"pause,omitempty"`
	Reset  *int64          `json:"reset,omitempty"`
}

// Look is a mouse drag in pixels.
type Look struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Move is the set of movement keys held for DT seconds.
type Move struct {
	Forward bool    `json:"forward"`
	Back    bool    `json:"back"`
	Left    bool    `json:"left"`
	Right   bool    `json:"right"`
	Up      bool    `json:"up"`
	Down    bool    `json:"down"`
	DT      float64 `json:"dt"`
}

// Status is the text message sent after every accepted command.
type Status struct {
	View   string            `json:"view"`
	Params frame.CloudParams `json:"params"`
	Error  string            `json:"error,omitempty"`
}

// Server owns one view and the set of connected clients.
type Server struct {
	interval time.Duration
	upgrader websocket.Upgrader

	mu    sync.Mutex
	view  views.Host
	frame []byte

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex
}

// New wraps view. fps <= 0 selects DefaultFPS.
func New(view views.Host, fps int) *Server {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Server{
		interval: time.Second / time.Duration(fps),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		view:    view,
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveHome)
	mux.HandleFunc("/frame.png", s.serveFrame)
	mux.HandleFunc("/params", s.serveParams)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Run renders and broadcasts a frame every tick until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			png, err := s.Tick()
			if err != nil {
				log.Printf("server: %v", err)
				continue
			}
			s.broadcast(websocket.BinaryMessage, png)
			if total := time.Since(start); total > s.interval {
				log.Printf("server: slow frame %v (budget %v)", total, s.interval)
			}
		}
	}
}

// Tick renders one frame and returns it PNG encoded.
func (s *Server) Tick() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Step(s.interval.Seconds())
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, s.view.Buffer()); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	s.frame = buf.Bytes()
	return s.frame, nil
}

// Apply executes one text command against the view.
func (s *Server) Apply(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(msg.Params) > 0 {
		p, err := frame.Merge(s.view.Params(), msg.Params)
		if err != nil {
			return err
		}
		s.view.SetParams(p)
	}
	cam := s.view.Camera()
	if msg.Look != nil {
		cam.Look(msg.Look.DX, msg.Look.DY)
	}
	if m := msg.Move; m != nil {
		cam.Move(camera.Input{
			Forward: m.Forward, Back: m.Back,
			Left: m.Left, Right: m.Right,
			Up: m.Up, Down: m.Down,
		}, m.DT)
	}
	if msg.Pause != nil {
		s.view.Clock().SetPaused(*msg.Pause)
	}
	if msg.Reset != nil {
		s.view.Reset(*msg.Reset)
	}
	return nil
}

// ApplyUniforms makes the next frame render from a raw uniform payload. The
// payload's resolution is clamped to the view's viewport.
func (s *Server) ApplyUniforms(payload []byte) error {
	u, err := frame.UnmarshalUniforms(payload)
	if err != nil {
		return err
	}
	fc := u.Context()
	s.mu.Lock()
	fc.LimitResolution(s.view.Viewport())
	s.view.UseContext(fc)
	s.mu.Unlock()
	return nil
}

func (s *Server) status(err error) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{View: s.view.Name(), Params: s.view.Params()}
	if err != nil {
		st.Error = err.Error()
	}
	return st
}

func (s *Server) serveHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, homePage)
}

func (s *Server) serveFrame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	png := s.frame
	s.mu.Unlock()
	if png == nil {
		var err error
		if png, err = s.Tick(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}

func (s *Server) serveParams(w http.ResponseWriter, r *http.Request) {
	var err error
	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		var raw []byte
		if raw, err = io.ReadAll(io.LimitReader(r.Body, maxMessageSize)); err == nil {
			err = s.Apply(Message{Params: raw})
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
	}
	json.NewEncoder(w).Encode(s.status(err))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("server: websocket upgrade:", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	connMu := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = connMu
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	s.send(conn, connMu, websocket.TextMessage, s.status(nil))

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("server: websocket read:", err)
			}
			return
		}
		switch kind {
		case websocket.BinaryMessage:
			err = s.ApplyUniforms(data)
		case websocket.TextMessage:
			var msg Message
			if err = json.Unmarshal(data, &msg); err == nil {
				err = s.Apply(msg)
			} else {
				err = fmt.Errorf("decode message: %w", err)
			}
		}
		if !s.send(conn, connMu, websocket.TextMessage, s.status(err)) {
			return
		}
	}
}

// send writes v (JSON for text, raw bytes for binary) under the
// connection's write lock. It reports false when the write failed.
func (s *Server) send(conn *websocket.Conn, mu *sync.Mutex, kind int, v any) bool {
	var data []byte
	if kind == websocket.TextMessage {
		var err error
		if data, err = json.Marshal(v); err != nil {
			log.Println("server: encode status:", err)
			return true
		}
	} else {
		data = v.([]byte)
	}
	mu.Lock()
	defer mu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(kind, data); err != nil {
		log.Println("server: websocket write:", err)
		return false
	}
	return true
}

type client struct {
	conn *websocket.Conn
	mu   *sync.Mutex
}

// snapshot copies the client set so writes happen without clientsMu held.
func (s *Server) snapshot() []client {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	out := make([]client, 0, len(s.clients))
	for conn, mu := range s.clients {
		out = append(out, client{conn: conn, mu: mu})
	}
	return out
}

func (s *Server) broadcast(kind int, data []byte) {
	var failed []*websocket.Conn
	for _, c := range s.snapshot() {
		if !s.send(c.conn, c.mu, kind, data) {
			failed = append(failed, c.conn)
		}
	}

	for _, conn := range failed {
		conn.Close()
	}
}

// Clients reports the number of connected websocket clients.
func (s *Server) Clients() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

func (s *Server) closeAll() {
	for _, c := range s.snapshot() {
		c.conn.Close()
	}
}

const homePage = `<!doctype html>
<html><head><title>nimbus</title>
<style>body{margin:0;background:#000}img{width:100vw;height:100vh;object-fit:contain}</style>
</head><body><img id="sky" alt="sky">
<script>
const img = document.getElementById("sky");
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.binaryType = "blob";
ws.onmessage = (ev) => {
  if (typeof ev.data === "string") return;
  const url = URL.createObjectURL(ev.data);
  img.onload = () => URL.revokeObjectURL(url);
  img.src = url;
};
let drag = null;
img.onmousedown = (e) => { drag = [e.clientX, e.clientY]; };
window.onmouseup = () => { drag = null; };
window.onmousemove = (e) => {
  if (!drag) return;
  ws.send(JSON.stringify({look: {dx: e.clientX - drag[0], dy: e.clientY - drag[1]}}));
  drag = [e.clientX, e.clientY];
};
</script></body></html>
`
