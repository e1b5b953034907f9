package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"ferapp_backend/internal/db"
	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/repository"
	"ferapp_backend/internal/service"
)

// Smoke test against a running server: sign a token for a throwaway
// owner, subscribe to the tasks collection over the websocket, create a
// task through the API and expect a pushed snapshot containing it.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	ctx := context.Background()
	owners := repository.NewOwnerRepository(pool)

	owner, err := owners.GetByGoogleSub(ctx, "ws-smoke-owner")
	if err != nil {
		owner = &domain.Owner{GoogleSub: "ws-smoke-owner", Name: "Smoke"}
		if err := owners.Create(ctx, owner); err != nil {
			log.Fatalf("create owner: %v", err)
		}
	}

	service.InitJWT()
	token, err := service.GenerateJWT(owner.ID)
	if err != nil {
		log.Fatalf("gen token: %v", err)
	}

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	wsURL := fmt.Sprintf("ws://127.0.0.1:%s/ws?token=%s", port, token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitFor := func(msgType string) map[string]any {
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if strings.Contains(err.Error(), "timeout") {
					continue
				}
				log.Fatalf("read: %v", err)
			}
			var obj map[string]any
			_ = json.Unmarshal(msg, &obj)
			if t, ok := obj["type"].(string); ok && t == msgType {
				return obj
			}
		}
		log.Fatalf("no %q message within deadline", msgType)
		return nil
	}

	waitFor("ready")

	sub := `{"type":"subscribe","collections":["tasks"]}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(sub)); err != nil {
		log.Fatalf("subscribe: %v", err)
	}
	first := waitFor("snapshot")
	log.Printf("initial snapshot: %d documents", countDocs(first))

	// Create a task through the API so the server's own store signals
	// the change back to us.
	body := strings.NewReader(`{"text":"smoke task"}`)
	req, _ := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://127.0.0.1:%s/api/v1/tasks", port), body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("create task: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("create task: status %d", resp.StatusCode)
	}

	pushed := waitFor("snapshot")
	log.Printf("pushed snapshot: %d documents", countDocs(pushed))

	log.Println("smoke test finished")
}

func countDocs(snapshot map[string]any) int {
	docs, _ := snapshot["documents"].([]any)
	return len(docs)
}
