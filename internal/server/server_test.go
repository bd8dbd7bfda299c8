package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorilla/websocket"

	"nimbus/internal/camera"
	"nimbus/internal/frame"
	"nimbus/internal/views"
	_ "nimbus/internal/views/clouds"
)

func newTestServer(t *testing.T, fps int) (*Server, *httptest.Server) {
	t.Helper()
	view, err := views.Open("clouds", map[string]string{"w": "32", "h": "18", "steps": "16"})
	if err != nil {
		t.Fatalf("open view: %v", err)
	}
	s := New(view, fps)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	return conn
}

func cameraOf(s *Server) camera.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.view.Camera()
}

func readStatus(t *testing.T, conn *websocket.Conn) Status {
	t.Helper()
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if kind != websocket.TextMessage {
			continue
		}
		var st Status
		if err := json.Unmarshal(data, &st); err != nil {
			t.Fatalf("decode status %q: %v", data, err)
		}
		return st
	}
}

func TestParamsEndpoint(t *testing.T) {
	_, ts := newTestServer(t, 0)

	resp, err := http.Get(ts.URL + "/params")
	if err != nil {
		t.Fatal(err)
	}
	var st Status
	json.NewDecoder(resp.Body).Decode(&st)
	resp.Body.Close()
	if st.View != "clouds" || st.Params.Coverage != frame.DefaultParams().Coverage {
		t.Fatalf("initial status %+v", st)
	}

	resp, err = http.Post(ts.URL+"/params", "application/json", strings.NewReader(`{"coverage":0.9,"steps":500}`))
	if err != nil {
		t.Fatal(err)
	}
	json.NewDecoder(resp.Body).Decode(&st)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status code %d", resp.StatusCode)
	}
	if st.Params.Coverage != 0.9 {
		t.Fatalf("coverage %v after merge", st.Params.Coverage)
	}
	if st.Params.Steps != frame.MaxSteps {
		t.Fatalf("steps %v not clamped", st.Params.Steps)
	}
	if st.Params.Density != frame.DefaultParams().Density {
		t.Fatalf("unrelated field changed: density %v", st.Params.Density)
	}

	resp, err = http.Post(ts.URL+"/params", "application/json", strings.NewReader(`{"coverage":`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed body got %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/params", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("DELETE got %d", resp.StatusCode)
	}
}

func TestFrameEndpointServesPNG(t *testing.T) {
	_, ts := newTestServer(t, 0)
	resp, err := http.Get(ts.URL + "/frame.png")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type %q", ct)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Fatalf("frame %v, expected 16x9 at half resolution", b)
	}
}

func TestWebSocketCommands(t *testing.T) {
	s, ts := newTestServer(t, 0)
	conn := dial(t, ts)
	if st := readStatus(t, conn); st.View != "clouds" {
		t.Fatalf("hello %+v", st)
	}

	theta := cameraOf(s).Theta
	if err := conn.WriteJSON(Message{Look: &Look{DX: 100}}); err != nil {
		t.Fatal(err)
	}
	if st := readStatus(t, conn); st.Error != "" {
		t.Fatalf("look rejected: %s", st.Error)
	}
	if got := cameraOf(s).Theta; got <= theta {
		t.Fatalf("heading %v did not increase from %v", got, theta)
	}

	y := cameraOf(s).Pos.Y
	conn.WriteJSON(Message{Move: &Move{Up: true, DT: 0.05}})
	readStatus(t, conn)
	if got := cameraOf(s).Pos.Y; got <= y {
		t.Fatalf("altitude %v did not rise from %v", got, y)
	}

	conn.WriteMessage(websocket.TextMessage, []byte(`{"params":{"haze":0.7}}`))
	if st := readStatus(t, conn); st.Params.Haze != 0.7 {
		t.Fatalf("haze %v", st.Params.Haze)
	}

	conn.WriteMessage(websocket.TextMessage, []byte(`not json`))
	if st := readStatus(t, conn); st.Error == "" {
		t.Fatalf("malformed message accepted")
	}
}

func TestWebSocketUniformPayload(t *testing.T) {
	s, ts := newTestServer(t, 0)
	conn := dial(t, ts)
	readStatus(t, conn)

	fc := frame.NewContext(frame.DefaultParams(), camera.New().Basis(), 8, 6, 2.5)
	u := fc.Uniforms()
	if err := conn.WriteMessage(websocket.BinaryMessage, u.Marshal()); err != nil {
		t.Fatal(err)
	}
	if st := readStatus(t, conn); st.Error != "" {
		t.Fatalf("payload rejected: %s", st.Error)
	}
	if _, err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if got, want := s.view.LastContext(), u.Context(); got != want {
		t.Fatalf("frame context %+v, expected %+v", got, want)
	}
	if sz := s.view.Size(); sz.W != 8 || sz.H != 6 {
		t.Fatalf("frame size %+v", sz)
	}

	conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3})
	if st := readStatus(t, conn); st.Error == "" {
		t.Fatalf("short payload accepted")
	}
}

func TestUniformPayloadResolutionBounded(t *testing.T) {
	s, ts := newTestServer(t, 0)
	conn := dial(t, ts)
	readStatus(t, conn)

	fc := frame.NewContext(frame.DefaultParams(), camera.New().Basis(), 8, 6, 2.5)
	fc.Resolution = mgl32.Vec2{1e6, 1e6}
	u := fc.Uniforms()
	conn.WriteMessage(websocket.BinaryMessage, u.Marshal())
	if st := readStatus(t, conn); st.Error != "" {
		t.Fatalf("payload rejected: %s", st.Error)
	}
	if _, err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if sz := s.view.Size(); sz.W > 32 || sz.H > 18 {
		t.Fatalf("frame %+v exceeds the 32x18 viewport", sz)
	}
}

func TestSlowClientDoesNotBlockConnects(t *testing.T) {
	s, ts := newTestServer(t, 0)
	first := dial(t, ts)
	readStatus(t, first)

	clients := s.snapshot()
	if len(clients) != 1 {
		t.Fatalf("%d clients registered", len(clients))
	}
	// Holding the write lock stands in for a write stuck on a slow peer.
	clients[0].mu.Lock()
	done := make(chan struct{})
	go func() {
		s.broadcast(websocket.BinaryMessage, []byte{1})
		close(done)
	}()
	time.Sleep(50 * time.Millisecond)

	second := dial(t, ts)
	second.SetReadDeadline(time.Now().Add(3 * time.Second))
	if st := readStatus(t, second); st.View != "clouds" {
		t.Fatalf("hello %+v", st)
	}
	clients[0].mu.Unlock()
	<-done
	if n := s.Clients(); n != 2 {
		t.Fatalf("%d clients, expected 2", n)
	}
}

func TestRunBroadcastsFrames(t *testing.T) {
	s, ts := newTestServer(t, 50)
	conn := dial(t, ts)
	readStatus(t, conn)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if kind != websocket.BinaryMessage {
			continue
		}
		if _, err := png.Decode(bytes.NewReader(data)); err != nil {
			t.Fatalf("broadcast frame: %v", err)
		}
		break
	}
	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("Run returned %v", err)
	}
}
