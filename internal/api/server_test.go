package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/edaniels/golog"
	"github.com/gorilla/websocket"
	"go.viam.com/test"

	"devicequery"
	"devicequery/internal/protocol"
	"devicequery/internal/watch"
)

type fakeSource struct {
	mu    sync.Mutex
	mouse devicequery.MouseState
	keys  []devicequery.Keycode
	panic bool
}

func (f *fakeSource) GetMouse() devicequery.MouseState {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panic {
		panic("device gone")
	}
	return f.mouse
}

func (f *fakeSource) GetKeys() []devicequery.Keycode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]devicequery.Keycode{}, f.keys...)
}

func newTestServer(t *testing.T, source devicequery.DeviceQuery, token string) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer(source, token, golog.NewTestLogger(t))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ts.Close()
		test.That(t, s.Close(), test.ShouldBeNil)
	})
	return s, ts
}

func get(t *testing.T, url, token string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	test.That(t, err, test.ShouldBeNil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	test.That(t, err, test.ShouldBeNil)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	test.That(t, err, test.ShouldBeNil)
	return resp.StatusCode, strings.TrimSpace(string(body))
}

func TestQueryRoutes(t *testing.T) {
	source := &fakeSource{
		mouse: devicequery.MouseState{Coordinates: devicequery.Point{X: 20, Y: 30}, Buttons: [5]bool{false, true}},
		keys:  []devicequery.Keycode{devicequery.KeyLControl, devicequery.KeyQ},
	}
	_, ts := newTestServer(t, source, "")

	code, body := get(t, ts.URL+"/api/mouse", "")
	test.That(t, code, test.ShouldEqual, http.StatusOK)
	test.That(t, body, test.ShouldEqual, `{"coordinates":{"x":20,"y":30},"buttons":[false,true,false,false,false]}`)

	code, body = get(t, ts.URL+"/api/keys", "")
	test.That(t, code, test.ShouldEqual, http.StatusOK)
	test.That(t, body, test.ShouldEqual, `{"keys":["LControl","Q"]}`)

	code, body = get(t, ts.URL+"/api/state", "")
	test.That(t, code, test.ShouldEqual, http.StatusOK)
	var state protocol.SnapshotPayload
	test.That(t, json.Unmarshal([]byte(body), &state), test.ShouldBeNil)
	test.That(t, state.Mouse, test.ShouldResemble, source.mouse)
	test.That(t, state.Keys, test.ShouldResemble, source.keys)

	code, body = get(t, ts.URL+"/health", "")
	test.That(t, code, test.ShouldEqual, http.StatusOK)
	test.That(t, body, test.ShouldEqual, `{"status":"ok"}`)

	resp, err := http.Post(ts.URL+"/api/mouse", "application/json", nil)
	test.That(t, err, test.ShouldBeNil)
	resp.Body.Close()
	test.That(t, resp.StatusCode, test.ShouldEqual, http.StatusMethodNotAllowed)
}

func TestAuth(t *testing.T) {
	_, ts := newTestServer(t, &fakeSource{}, "secret")

	code, _ := get(t, ts.URL+"/api/mouse", "")
	test.That(t, code, test.ShouldEqual, http.StatusUnauthorized)

	code, _ = get(t, ts.URL+"/api/mouse", "wrong")
	test.That(t, code, test.ShouldEqual, http.StatusUnauthorized)

	code, _ = get(t, ts.URL+"/api/keys", "secret")
	test.That(t, code, test.ShouldEqual, http.StatusOK)

	code, _ = get(t, ts.URL+"/health", "")
	test.That(t, code, test.ShouldEqual, http.StatusOK)

	_, _, err := websocket.DefaultDialer.Dial(wsURL(ts)+"/ws", nil)
	test.That(t, err, test.ShouldNotBeNil)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts)+"/ws?token=secret", nil)
	test.That(t, err, test.ShouldBeNil)
	conn.Close()
}

func TestRecoverMiddleware(t *testing.T) {
	_, ts := newTestServer(t, &fakeSource{panic: true}, "")

	code, _ := get(t, ts.URL+"/api/mouse", "")
	test.That(t, code, test.ShouldEqual, http.StatusInternalServerError)

	code, _ = get(t, ts.URL+"/health", "")
	test.That(t, code, test.ShouldEqual, http.StatusOK)
}

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func readMessage(t *testing.T, conn *websocket.Conn) protocol.Message {
	t.Helper()
	test.That(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)), test.ShouldBeNil)
	_, data, err := conn.ReadMessage()
	test.That(t, err, test.ShouldBeNil)
	msg, err := protocol.Decode(data)
	test.That(t, err, test.ShouldBeNil)
	return msg
}

func waitForClients(t *testing.T, s *Server, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for s.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, s.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWebSocketStream(t *testing.T) {
	source := &fakeSource{keys: []devicequery.Keycode{devicequery.KeyA}}
	s, ts := newTestServer(t, source, "")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts)+"/ws", nil)
	test.That(t, err, test.ShouldBeNil)
	defer conn.Close()

	msg := readMessage(t, conn)
	test.That(t, msg.Type, test.ShouldEqual, protocol.TypeSnapshot)
	test.That(t, msg.Payload.(protocol.SnapshotPayload).Keys, test.ShouldResemble, []devicequery.Keycode{devicequery.KeyA})

	waitForClients(t, s, 1)

	// Polls without changes are not streamed.
	s.Publish(watch.Snapshot{}, nil)
	events := []watch.Event{{Type: watch.EventKey, Key: devicequery.KeyA, Timestamp: 1}}
	s.Publish(watch.Snapshot{}, events)

	msg = readMessage(t, conn)
	test.That(t, msg.Type, test.ShouldEqual, protocol.TypeEvents)
	test.That(t, msg.Payload, test.ShouldResemble, protocol.EventsPayload{Events: events})

	test.That(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)), test.ShouldBeNil)
	msg = readMessage(t, conn)
	test.That(t, msg.Type, test.ShouldEqual, protocol.TypePing)
}

func TestCloseDisconnectsClients(t *testing.T) {
	s := NewServer(&fakeSource{}, "", golog.NewTestLogger(t))
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts)+"/ws", nil)
	test.That(t, err, test.ShouldBeNil)
	defer conn.Close()
	readMessage(t, conn)
	waitForClients(t, s, 1)

	test.That(t, s.Close(), test.ShouldBeNil)
	test.That(t, s.ClientCount(), test.ShouldEqual, 0)

	test.That(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)), test.ShouldBeNil)
	_, _, err = conn.ReadMessage()
	test.That(t, err, test.ShouldNotBeNil)

	// Publishing after close must not block.
	s.Publish(watch.Snapshot{}, []watch.Event{{Type: watch.EventKey}})
	test.That(t, s.Close(), test.ShouldBeNil)
}

func TestStartAndClose(t *testing.T) {
	s := NewServer(&fakeSource{}, "", golog.NewTestLogger(t))
	test.That(t, s.Addr(), test.ShouldBeNil)
	test.That(t, s.Start("127.0.0.1:0"), test.ShouldBeNil)
	test.That(t, s.Start("127.0.0.1:0"), test.ShouldNotBeNil)

	code, _ := get(t, "http://"+s.Addr().String()+"/health", "")
	test.That(t, code, test.ShouldEqual, http.StatusOK)
	test.That(t, s.Close(), test.ShouldBeNil)
}
