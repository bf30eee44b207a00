package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/achalesh/exhibition-manager-sub001/config"
	"github.com/achalesh/exhibition-manager-sub001/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var scanFeedClient *redis.Client

// InitScanFeed connects the redis client backing the live scan feed. With
// no REDIS_ADDR configured the feed stays off and publishes become no-ops.
func InitScanFeed() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		return
	}
	scanFeedClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})
}

func CloseScanFeed() {
	if scanFeedClient != nil {
		scanFeedClient.Close()
	}
}

func scanChannel(sessionID uint) string {
	return fmt.Sprintf("session:%d:scans", sessionID)
}

// PublishScanEvent pushes an issue/return event onto the session's scan
// channel. Failures are logged, never surfaced to the scanning handler.
func PublishScanEvent(event model.ScanEvent) {
	if scanFeedClient == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := scanFeedClient.Publish(context.Background(), scanChannel(event.SessionID), payload).Err(); err != nil {
		log.Printf("scan feed publish failed: %v", err)
	}
}

// ScanFeed streams scan events for one session over a websocket. Each
// connection holds its own redis subscription and forwards messages until
// the peer goes away.
var ScanFeed = websocket.New(func(c *websocket.Conn) {
	if scanFeedClient == nil {
		c.WriteMessage(websocket.TextMessage, []byte(`{"error":"scan feed disabled"}`))
		c.Close()
		return
	}

	sessionID := 0
	fmt.Sscanf(c.Params("sessionId"), "%d", &sessionID)
	if sessionID <= 0 {
		c.Close()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := scanFeedClient.Subscribe(ctx, scanChannel(uint(sessionID)))
	defer sub.Close()

	// Drain reads so close frames from the peer end the subscription.
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for msg := range sub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
})
