package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"jeoparty-service/internal/app"
	"jeoparty-service/internal/config"
	"jeoparty-service/internal/domain"
	"jeoparty-service/internal/infra/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	rules := config.DefaultRules()
	// Keep the countdown out of the way and make splashes near-instant so the
	// test can drive the whole flow without sleeping through real delays.
	rules.TickInterval = time.Hour
	rules.DailyDoubleSplash = 10 * time.Millisecond
	rules.MandatorySplash = 10 * time.Millisecond

	store := memory.NewSessionStore(rules)
	catalogRepo := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(soloCatalog()), time.Minute)
	service := app.NewGameService(store, catalogRepo)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", NewWSHandler(service).ServeWS)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestWebSocketFullGameFlow(t *testing.T) {
	server := newTestServer(t)

	u := "ws" + server.URL[len("http"):] + "/ws?gameId=g1"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	msgType, payload := readNext(conn, t, "connected")
	if msgType != "connected" || payload["gameId"] != "g1" {
		t.Fatalf("expected connected for g1, got %s %v", msgType, payload)
	}

	writeMsg(conn, t, map[string]any{
		"type": "configure",
		"payload": map[string]any{
			"playerCount": 2,
			"names":       []string{"Alice", "Bob"},
			"categoryIds": []string{"solo"},
		},
	})
	waitForSession(conn, t, func(session map[string]any) bool {
		return session["phase"] == "setup"
	})

	writeMsg(conn, t, map[string]any{"type": "start"})
	waitForSession(conn, t, func(session map[string]any) bool {
		return session["phase"] == "playing"
	})

	// The only question of a one-question category is its daily double, so
	// selecting it shows a splash first.
	writeMsg(conn, t, map[string]any{
		"type":    "selectCell",
		"payload": map[string]any{"questionId": "solo-q1"},
	})
	waitForSession(conn, t, func(session map[string]any) bool {
		q, ok := session["question"].(map[string]any)
		return ok && q["inSplash"] == false && q["status"] == "unanswered"
	})

	writeMsg(conn, t, map[string]any{
		"type":    "chooseOption",
		"payload": map[string]any{"option": "4"},
	})
	waitForSession(conn, t, func(session map[string]any) bool {
		q, ok := session["question"].(map[string]any)
		return ok && q["revealed"] == true && q["status"] == "correct"
	})

	writeMsg(conn, t, map[string]any{"type": "finish"})
	over := waitForSession(conn, t, func(session map[string]any) bool {
		return session["phase"] == "over"
	})
	standings, ok := over["standings"].([]any)
	if !ok || len(standings) != 2 {
		t.Fatalf("expected standings for 2 players, got %v", over["standings"])
	}
}

func TestWebSocketCategoriesAndErrors(t *testing.T) {
	server := newTestServer(t)

	u := "ws" + server.URL[len("http"):] + "/ws?gameId=g2"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	readNext(conn, t, "connected")

	if err := conn.WriteJSON(map[string]any{"type": "categories"}); err != nil {
		t.Fatalf("write categories: %v", err)
	}
	var listing struct {
		Type    string                   `json:"type"`
		Payload []domain.CategorySummary `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&listing); err != nil {
		t.Fatalf("read categories: %v", err)
	}
	if listing.Type != "categories" || len(listing.Payload) != 1 || listing.Payload[0].ID != "solo" {
		t.Fatalf("unexpected categories message: %+v", listing)
	}

	writeMsg(conn, t, map[string]any{"type": "bogus"})
	msgType, payload := readNext(conn, t, "error")
	if message, _ := payload["message"].(string); msgType != "error" || message == "" {
		t.Fatalf("expected error message, got %s %v", msgType, payload)
	}
}

func writeMsg(conn *websocket.Conn, t *testing.T, msg map[string]any) {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write %v: %v", msg["type"], err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s (%v)", expect, msg.Type, msg.Payload)
	}
	return msg.Type, msg.Payload
}

// waitForSession reads messages (skipping events) until a session snapshot
// satisfies the predicate, and returns that snapshot.
func waitForSession(conn *websocket.Conn, t *testing.T, want func(map[string]any) bool) map[string]any {
	t.Helper()
	for i := 0; i < 20; i++ {
		msgType, payload := readNext(conn, t, "")
		if msgType != "session" {
			continue
		}
		if want(payload) {
			return payload
		}
	}
	t.Fatalf("no session message matched")
	return nil
}

func soloCatalog() domain.Catalog {
	return domain.Catalog{Categories: []domain.Category{
		{
			ID:    "solo",
			Title: "Solo",
			Questions: []domain.Question{
				{ID: "solo-q1", Value: 100, Prompt: "What is 2 + 2?", Answer: "4", Options: []string{"3", "4", "5", "6"}},
			},
		},
	}}
}
