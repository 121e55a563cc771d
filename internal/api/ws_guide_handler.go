package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"tripwhisperer/internal/config"
	"tripwhisperer/internal/guide"
)

// WSGuideRequest is the single message a client sends after connecting.
type WSGuideRequest struct {
	City string `json:"city"`
	Lang string `json:"lang"`
}

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSGuideHandler runs the same flow as POST /guide but pushes a stage event
// before each provider call so the page can show real progress instead of a
// generic spinner. One submission per connection; the connection closes when
// the final payload has been written.
func WSGuideHandler(cfg *config.Config, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("WebSocket upgrade failed:", err)
			return
		}
		defer conn.Close()

		_, msg, err := conn.ReadMessage()
		if err != nil {
			conn.WriteJSON(map[string]string{"error": "invalid initial payload"})
			return
		}
		var req WSGuideRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			conn.WriteJSON(map[string]string{"error": "invalid JSON"})
			return
		}

		city := guide.NormalizeCity(req.City)
		if city == "" {
			conn.WriteJSON(map[string]string{"error": "missing city"})
			return
		}
		lang := resolveLang(cfg, req.Lang)

		view := buildGuide(c.Request.Context(), deps, city, lang, func(stage string) {
			conn.WriteJSON(map[string]string{"stage": stage})
		})
		log.Printf("[Guide] %s streamed city=%q lang=%s sections=%d", view.ID, city, lang, len(view.Sections))

		conn.WriteJSON(gin.H{
			"stage":  StageDone,
			"result": view,
		})
	}
}
